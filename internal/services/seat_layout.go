package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

const (
	defaultSingleDeckCapacity = 46
	doubleDeckSeats           = 57
	seatsPerBlock             = 4

	FloorA = "A"
	FloorB = "B"
)

// SeatLayout is the ordered cell list of one vehicle, fixtures included.
type SeatLayout struct {
	Model    models.VehicleModel     `json:"vehicle_model"`
	Capacity int                     `json:"capacity"`
	Cells    []models.SeatDescriptor `json:"cells"`
}

// SeatNumbers returns the assignable seat numbers in layout order.
func (l SeatLayout) SeatNumbers() []int {
	out := make([]int, 0, len(l.Cells))
	for _, c := range l.Cells {
		if c.IsSeat() {
			out = append(out, c.Number)
		}
	}
	return out
}

// Contains reports whether n is an assignable seat of the layout.
func (l SeatLayout) Contains(n int) bool {
	for _, c := range l.Cells {
		if c.IsSeat() && c.Number == n {
			return true
		}
	}
	return false
}

// Floors lists floor names in the order they first appear.
func (l SeatLayout) Floors() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range l.Cells {
		if !seen[c.Floor] {
			seen[c.Floor] = true
			out = append(out, c.Floor)
		}
	}
	return out
}

// FloorCells returns the cells drawn on one floor.
func (l SeatLayout) FloorCells(floor string) []models.SeatDescriptor {
	out := []models.SeatDescriptor{}
	for _, c := range l.Cells {
		if c.Floor == floor {
			out = append(out, c)
		}
	}
	return out
}

// LayoutFor returns the seat topology for a vehicle model. An empty model is
// treated as single-deck; capacity <= 0 falls back to the model default.
func LayoutFor(model models.VehicleModel, capacity int) (SeatLayout, error) {
	if model == "" {
		model = models.VehicleSingleDeck
	}
	switch model {
	case models.VehicleSingleDeck, models.VehicleVan:
		if capacity <= 0 {
			capacity = defaultSingleDeckCapacity
		}
		return SeatLayout{Model: model, Capacity: capacity, Cells: singleDeckCells(capacity)}, nil
	case models.VehicleDoubleDeck:
		if capacity <= 0 || capacity > doubleDeckSeats {
			capacity = doubleDeckSeats
		}
		return SeatLayout{Model: model, Capacity: capacity, Cells: doubleDeckCells(capacity)}, nil
	default:
		return SeatLayout{}, domain.ValidationError{
			Field: "vehicle_model",
			Msg:   fmt.Sprintf("%s: %q", domain.ErrUnknownVehicleModel, string(model)),
			Err:   domain.ErrUnknownVehicleModel,
		}
	}
}

// LayoutForTrip is LayoutFor on a trip's model and capacity.
func LayoutForTrip(trip models.Trip) (SeatLayout, error) {
	return LayoutFor(trip.VehicleModel, trip.Capacity)
}

// singleDeckCells lays seats out in blocks of four: a left pair and a right
// pair around the aisle, one block per row.
func singleDeckCells(capacity int) []models.SeatDescriptor {
	out := make([]models.SeatDescriptor, 0, capacity)
	for n := 1; n <= capacity; n++ {
		out = append(out, blockSeat(FloorA, n, 0, 0))
	}
	return out
}

func blockSeat(floor string, n, firstNumber, firstRow int) models.SeatDescriptor {
	offset := n - firstNumber - 1
	side := models.SideLeft
	if offset%seatsPerBlock >= 2 {
		side = models.SideRight
	}
	return models.SeatDescriptor{
		Number: n,
		Floor:  floor,
		Row:    firstRow + offset/seatsPerBlock + 1,
		Side:   side,
		Kind:   models.KindSeat,
	}
}

func fixture(floor string, row int, side models.SeatSide, kind models.SeatKind) models.SeatDescriptor {
	return models.SeatDescriptor{Floor: floor, Row: row, Side: side, Kind: kind}
}

// doubleDeckCells is the fixed double-deck topology: floor A holds seats
// 1-48 in twelve rows with the stairs behind them, floor B holds the
// entrance, stairs, seats 49-57, restroom and fridge.
func doubleDeckCells(capacity int) []models.SeatDescriptor {
	cells := make([]models.SeatDescriptor, 0, doubleDeckSeats+5)
	for n := 1; n <= 48; n++ {
		cells = append(cells, blockSeat(FloorA, n, 0, 0))
	}
	cells = append(cells, fixture(FloorA, 13, models.SideRight, models.KindStairs))

	cells = append(cells,
		fixture(FloorB, 1, models.SideLeft, models.KindStairs),
		fixture(FloorB, 1, models.SideRight, models.KindEntrance),
	)
	for n := 49; n <= 56; n++ {
		cells = append(cells, blockSeat(FloorB, n, 48, 1))
	}
	cells = append(cells,
		models.SeatDescriptor{Number: 57, Floor: FloorB, Row: 4, Side: models.SideLeft, Kind: models.KindSeat},
		fixture(FloorB, 4, models.SideRight, models.KindRestroom),
		fixture(FloorB, 5, models.SideRight, models.KindFridge),
	)

	out := cells[:0]
	for _, c := range cells {
		if c.IsSeat() && c.Number > capacity {
			continue
		}
		out = append(out, c)
	}
	return out
}
