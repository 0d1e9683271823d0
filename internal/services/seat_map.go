package services

import (
	"context"

	"backoffice/internal/domain/models"
	"backoffice/internal/metrics"
	"backoffice/internal/utils"
)

// SeatMapSession is the caller-owned view state of the seat map.
type SeatMapSession struct {
	Query    string
	Selected int
}

type SeatCell struct {
	models.SeatDescriptor
	Occupant *models.Passenger `json:"occupant,omitempty"`
	Dimmed   bool              `json:"dimmed"`
	Selected bool              `json:"selected"`
}

type SeatFloor struct {
	Name  string     `json:"name"`
	Cells []SeatCell `json:"cells"`
}

// SeatMap is one render of a trip's seats. Every cell is present whatever the
// query; non-matching seats are only dimmed.
type SeatMap struct {
	TripID      int64               `json:"trip_id"`
	Model       models.VehicleModel `json:"vehicle_model"`
	Capacity    int                 `json:"capacity"`
	Floors      []SeatFloor         `json:"floors"`
	Occupied    int                 `json:"occupied"`
	Free        int                 `json:"free"`
	Unassigned  []models.Passenger  `json:"unassigned"`
	LapChildren []models.Passenger  `json:"lap_children"`
	Conflicts   []SeatConflict      `json:"conflicts,omitempty"`
	Warning     string              `json:"warning,omitempty"`
}

// BuildSeatMap combines layout, occupancy and search for one render cycle.
func BuildSeatMap(trip models.Trip, passengers []models.Passenger, session SeatMapSession) (SeatMap, error) {
	layout, err := LayoutForTrip(trip)
	if err != nil {
		return SeatMap{}, err
	}
	own := make([]models.Passenger, 0, len(passengers))
	for _, p := range passengers {
		if p.TripID == trip.ID {
			own = append(own, p)
		}
	}
	idx := BuildOccupancy(own)

	out := SeatMap{
		TripID:      trip.ID,
		Model:       layout.Model,
		Capacity:    layout.Capacity,
		Occupied:    idx.OccupiedCount(),
		Free:        len(idx.FreeSeats(layout)),
		Unassigned:  idx.Unassigned,
		LapChildren: idx.LapChildren,
		Conflicts:   idx.Conflicts,
	}
	if err := idx.Err(); err != nil {
		out.Warning = err.Error()
	}

	for _, floor := range layout.Floors() {
		sf := SeatFloor{Name: floor}
		for _, d := range layout.FloorCells(floor) {
			cell := SeatCell{SeatDescriptor: d}
			if d.IsSeat() {
				var occupant *models.Passenger
				if p, ok := idx.Occupant(d.Number); ok {
					occupant = &p
				}
				cell.Occupant = occupant
				cell.Dimmed = !SeatMatches(d.Number, occupant, session.Query)
				cell.Selected = session.Selected == d.Number
			}
			sf.Cells = append(sf.Cells, cell)
		}
		out.Floors = append(out.Floors, sf)
	}
	return out, nil
}

// SeatMapService loads a trip snapshot and renders its seat map.
type SeatMapService struct {
	Trips      TripStore
	Passengers PassengerStore
	RequestID  string
}

func (s SeatMapService) Get(ctx context.Context, tripID int64, session SeatMapSession) (SeatMap, error) {
	trip, err := s.Trips.GetByID(ctx, tripID)
	if err != nil {
		return SeatMap{}, err
	}
	passengers, err := s.Passengers.ListByTrip(ctx, tripID)
	if err != nil {
		return SeatMap{}, err
	}
	m, err := BuildSeatMap(trip, passengers, session)
	if err != nil {
		return SeatMap{}, err
	}
	if len(m.Conflicts) > 0 {
		metrics.SeatIntegrityWarnings.Add(float64(len(m.Conflicts)))
		utils.LogEventf(s.RequestID, "seat", "integrity_warning", "trip_id=%d %s", tripID, m.Warning)
	}
	return m, nil
}
