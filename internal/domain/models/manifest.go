package models

import "time"

// Passenger type labels printed on the manifest.
const (
	TypeAdult    = "Adult"
	TypeExempt   = "Exempt (0–5)"
	TypeChild    = "Child (6–11)"
	TypeLapChild = "Lap Child"
)

// ManifestRow is one derived line of a passenger manifest.
type ManifestRow struct {
	Index            int        `json:"index"`
	NewGroup         bool       `json:"new_group"`
	GroupColor       GroupColor `json:"group_color,omitempty"`
	GroupLabel       string     `json:"group_label"`
	Passenger        Passenger  `json:"passenger"`
	DisplayName      string     `json:"display_name"`
	DocumentID       string     `json:"document_id"`
	TypeLabel        string     `json:"type_label"`
	SeatDisplay      string     `json:"seat_display"`
	BoardingLocation string     `json:"boarding_location"`
}

// ManifestHeader describes the trip at the top of a rendered manifest.
type ManifestHeader struct {
	TripName       string       `json:"trip_name"`
	Destination    string       `json:"destination"`
	DepartureDate  string       `json:"departure_date"`
	VehicleModel   VehicleModel `json:"vehicle_model"`
	Capacity       int          `json:"capacity"`
	PassengerCount int          `json:"passenger_count"`
	GeneratedAt    time.Time    `json:"generated_at"`
}

// Manifest is the printable document: header plus ordered rows.
type Manifest struct {
	Header ManifestHeader `json:"header"`
	Rows   []ManifestRow  `json:"rows"`
}
