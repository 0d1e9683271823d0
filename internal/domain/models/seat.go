package models

// SeatKind separates assignable seats from fixtures drawn on the map.
type SeatKind string

const (
	KindSeat     SeatKind = "seat"
	KindEntrance SeatKind = "entrance"
	KindStairs   SeatKind = "stairs"
	KindRestroom SeatKind = "restroom"
	KindFridge   SeatKind = "fridge"
)

// SeatSide is the position of a cell relative to the aisle.
type SeatSide string

const (
	SideLeft  SeatSide = "left"
	SideRight SeatSide = "right"
)

// SeatDescriptor is one cell of a vehicle layout. Fixtures carry Number 0.
type SeatDescriptor struct {
	Number int      `json:"number,omitempty"`
	Floor  string   `json:"floor"`
	Row    int      `json:"row"`
	Side   SeatSide `json:"side"`
	Kind   SeatKind `json:"kind"`
}

// IsSeat reports whether the cell can be assigned to a passenger.
func (d SeatDescriptor) IsSeat() bool {
	return d.Kind == KindSeat
}
