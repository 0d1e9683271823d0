package services

import (
	"fmt"
	"sort"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// SeatConflict records a passenger whose seat number was already taken by an
// earlier passenger of the same trip.
type SeatConflict struct {
	Seat      int              `json:"seat"`
	Holder    models.Passenger `json:"holder"`
	Duplicate models.Passenger `json:"duplicate"`
}

// OccupancyIndex maps seat numbers to passengers for one trip snapshot.
// It is never patched in place; rebuild it after every mutation.
type OccupancyIndex struct {
	BySeat      map[int]models.Passenger
	Unassigned  []models.Passenger
	LapChildren []models.Passenger
	Conflicts   []SeatConflict
}

// BuildOccupancy folds a passenger list into an index. Lap children never
// hold a seat key and never count as unassigned. When two passengers share a
// seat the first keeps it and the second is reported in Conflicts.
func BuildOccupancy(passengers []models.Passenger) OccupancyIndex {
	idx := OccupancyIndex{
		BySeat:      make(map[int]models.Passenger, len(passengers)),
		Unassigned:  []models.Passenger{},
		LapChildren: []models.Passenger{},
	}
	for _, p := range passengers {
		switch {
		case p.IsLapChild:
			idx.LapChildren = append(idx.LapChildren, p)
		case p.HasSeat():
			seat := p.Seat()
			if holder, taken := idx.BySeat[seat]; taken {
				idx.Conflicts = append(idx.Conflicts, SeatConflict{Seat: seat, Holder: holder, Duplicate: p})
				continue
			}
			idx.BySeat[seat] = p
		default:
			idx.Unassigned = append(idx.Unassigned, p)
		}
	}
	return idx
}

// Occupant returns the passenger holding seat, if any.
func (idx OccupancyIndex) Occupant(seat int) (models.Passenger, bool) {
	p, ok := idx.BySeat[seat]
	return p, ok
}

// OccupiedCount is the number of keyed seats.
func (idx OccupancyIndex) OccupiedCount() int {
	return len(idx.BySeat)
}

// FreeSeats lists layout seats with no occupant, in layout order.
func (idx OccupancyIndex) FreeSeats(layout SeatLayout) []int {
	out := []int{}
	for _, n := range layout.SeatNumbers() {
		if _, ok := idx.BySeat[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// Err returns an IntegrityError describing duplicate seat holders, or nil.
func (idx OccupancyIndex) Err() error {
	if len(idx.Conflicts) == 0 {
		return nil
	}
	seats := make([]int, 0, len(idx.Conflicts))
	for _, c := range idx.Conflicts {
		seats = append(seats, c.Seat)
	}
	sort.Ints(seats)
	parts := make([]string, 0, len(seats))
	for _, s := range seats {
		parts = append(parts, fmt.Sprintf("%d", s))
	}
	return domain.IntegrityError{Msg: "seat held by more than one passenger: " + strings.Join(parts, ",")}
}
