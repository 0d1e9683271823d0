package models

import "strings"

// GroupColor tags a family/party in the manifest.
type GroupColor string

const (
	GroupRed    GroupColor = "red"
	GroupBlue   GroupColor = "blue"
	GroupGreen  GroupColor = "green"
	GroupYellow GroupColor = "yellow"
	GroupPurple GroupColor = "purple"
	GroupPink   GroupColor = "pink"
	GroupOrange GroupColor = "orange"
	GroupBrown  GroupColor = "brown"
	GroupGray   GroupColor = "gray"
)

// GroupPalette is the manifest ordering of group colors.
var GroupPalette = []GroupColor{
	GroupRed, GroupBlue, GroupGreen, GroupYellow, GroupPurple,
	GroupPink, GroupOrange, GroupBrown, GroupGray,
}

// Rank returns the palette position; colorless and unknown colors sort last.
func (c GroupColor) Rank() int {
	for i, p := range GroupPalette {
		if p == c {
			return i
		}
	}
	return len(GroupPalette)
}

// Valid reports whether c is empty or part of the palette.
func (c GroupColor) Valid() bool {
	return c == "" || c.Rank() < len(GroupPalette)
}

// ParseGroupColor lower-cases and trims a stored color.
func ParseGroupColor(raw string) GroupColor {
	return GroupColor(strings.ToLower(strings.TrimSpace(raw)))
}

// Passenger is one traveller of a trip. SeatNumber and IsLapChild are
// mutually exclusive; FloorLabel is derived from SeatNumber.
type Passenger struct {
	ID               int64      `json:"id"`
	TripID           int64      `json:"trip_id"`
	FullName         string     `json:"full_name"`
	DocumentID       string     `json:"document_id"`
	Phone            string     `json:"phone"`
	Age              *int       `json:"age"`
	BoardingLocation string     `json:"boarding_location"`
	SeatNumber       *int       `json:"seat_number"`
	FloorLabel       string     `json:"floor_label,omitempty"`
	IsLapChild       bool       `json:"is_lap_child"`
	PrincipalID      *int64     `json:"principal_id,omitempty"`
	GroupColor       GroupColor `json:"group_color,omitempty"`
	GroupNumber      *int       `json:"group_number,omitempty"`
}

// HasSeat reports whether a seat number is assigned.
func (p Passenger) HasSeat() bool {
	return p.SeatNumber != nil
}

// Seat returns the assigned seat or 0.
func (p Passenger) Seat() int {
	if p.SeatNumber == nil {
		return 0
	}
	return *p.SeatNumber
}

// IsAccompanying reports whether the passenger travels under a principal.
func (p Passenger) IsAccompanying() bool {
	return p.PrincipalID != nil
}

// Group returns the group number, defaulting to 1.
func (p Passenger) Group() int {
	if p.GroupNumber == nil || *p.GroupNumber <= 0 {
		return 1
	}
	return *p.GroupNumber
}

// IntPtr is a small helper for optional numeric fields.
func IntPtr(v int) *int {
	return &v
}

func Int64Ptr(v int64) *int64 {
	return &v
}
