package services

import (
	"context"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/metrics"
	"backoffice/internal/utils"
)

const (
	FloorUpper = "upper floor"
	FloorLower = "lower floor"
	FloorMain  = "main floor"

	// doubleDeckLowerFrom is the first seat printed as lower floor on a
	// double-deck vehicle.
	doubleDeckLowerFrom = 48
)

// TripStore reads trips from the entity store.
type TripStore interface {
	GetByID(ctx context.Context, id int64) (models.Trip, error)
}

// PassengerStore reads and writes passenger records. Update takes the full
// record.
type PassengerStore interface {
	GetByID(ctx context.Context, id int64) (models.Passenger, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.Passenger, error)
	Update(ctx context.Context, p models.Passenger) error
}

// FloorLabel derives the printed deck for a seat.
func FloorLabel(model models.VehicleModel, seat int) string {
	if model != models.VehicleDoubleDeck {
		return FloorMain
	}
	if seat >= doubleDeckLowerFrom {
		return FloorLower
	}
	return FloorUpper
}

// AllocationPlan is the ordered list of writes needed to move a passenger to
// a seat. Release, when set, must be persisted before Assign.
type AllocationPlan struct {
	Release *models.Passenger
	Assign  models.Passenger
}

// PlanAssignment validates moving p to seat against a trip snapshot. It never
// resolves collisions: a seat held by someone else is a ConflictError.
func PlanAssignment(trip models.Trip, layout SeatLayout, idx OccupancyIndex, p models.Passenger, seat int) (AllocationPlan, error) {
	if p.TripID != trip.ID {
		return AllocationPlan{}, domain.NotFoundError{Resource: "passenger"}
	}
	if p.IsLapChild {
		return AllocationPlan{}, domain.ValidationError{Field: "seat_number", Err: domain.ErrLapChildSeat}
	}
	if !layout.Contains(seat) {
		return AllocationPlan{}, domain.ValidationError{
			Field: "seat_number",
			Msg:   fmt.Sprintf("%s: %d", domain.ErrSeatOutOfDomain, seat),
			Err:   domain.ErrSeatOutOfDomain,
		}
	}
	if occupant, ok := idx.Occupant(seat); ok && occupant.ID != p.ID {
		return AllocationPlan{}, domain.ConflictError{
			Resource: "seat",
			Msg:      fmt.Sprintf("%s: %d", domain.ErrSeatAlreadyOccupied, seat),
			Err:      domain.ErrSeatAlreadyOccupied,
		}
	}

	var plan AllocationPlan
	if p.HasSeat() && p.Seat() != seat {
		released := ReleaseSeat(p)
		plan.Release = &released
		p = released
	}
	p.SeatNumber = models.IntPtr(seat)
	p.FloorLabel = FloorLabel(trip.VehicleModel, seat)
	plan.Assign = p
	return plan, nil
}

// ReleaseSeat clears seat and floor. Releasing an unseated passenger returns
// it unchanged.
func ReleaseSeat(p models.Passenger) models.Passenger {
	p.SeatNumber = nil
	p.FloorLabel = ""
	return p
}

// AllocationService applies seat plans against the entity store.
type AllocationService struct {
	Trips      TripStore
	Passengers PassengerStore
	RequestID  string
}

// Assign moves a passenger of trip to seat and returns the stored record.
func (s AllocationService) Assign(ctx context.Context, tripID, passengerID int64, seat int) (models.Passenger, error) {
	trip, err := s.Trips.GetByID(ctx, tripID)
	if err != nil {
		return models.Passenger{}, err
	}
	layout, err := LayoutForTrip(trip)
	if err != nil {
		return models.Passenger{}, err
	}
	passengers, err := s.Passengers.ListByTrip(ctx, tripID)
	if err != nil {
		return models.Passenger{}, err
	}
	p, ok := findPassenger(passengers, passengerID)
	if !ok {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	}

	idx := BuildOccupancy(passengers)
	if err := idx.Err(); err != nil {
		metrics.SeatIntegrityWarnings.Add(float64(len(idx.Conflicts)))
		utils.LogEventf(s.RequestID, "seat", "integrity_warning", "trip_id=%d %v", tripID, err)
	}

	plan, err := PlanAssignment(trip, layout, idx, p, seat)
	if err != nil {
		metrics.SeatAssignments.WithLabelValues(assignResult(err)).Inc()
		utils.LogEventf(s.RequestID, "seat", "assign_rejected", "trip_id=%d passenger_id=%d seat=%d err=%v", tripID, passengerID, seat, err)
		return models.Passenger{}, err
	}

	if plan.Release != nil {
		if err := s.Passengers.Update(ctx, *plan.Release); err != nil {
			return models.Passenger{}, err
		}
		metrics.SeatReleases.Inc()
		utils.LogEventf(s.RequestID, "seat", "release", "trip_id=%d passenger_id=%d seat=%d", tripID, passengerID, p.Seat())
	}
	if err := s.Passengers.Update(ctx, plan.Assign); err != nil {
		return models.Passenger{}, err
	}

	metrics.SeatAssignments.WithLabelValues("ok").Inc()
	utils.LogEventf(s.RequestID, "seat", "assign", "trip_id=%d passenger_id=%d seat=%d floor=%s", tripID, passengerID, seat, plan.Assign.FloorLabel)
	return plan.Assign, nil
}

// Release clears the passenger's seat. It does nothing for a passenger with
// no seat and no floor label.
func (s AllocationService) Release(ctx context.Context, tripID, passengerID int64) (models.Passenger, error) {
	p, err := s.Passengers.GetByID(ctx, passengerID)
	if err != nil {
		return models.Passenger{}, err
	}
	if p.TripID != tripID {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	}
	if !p.HasSeat() && p.FloorLabel == "" {
		return p, nil
	}

	prev := p.Seat()
	released := ReleaseSeat(p)
	if err := s.Passengers.Update(ctx, released); err != nil {
		return models.Passenger{}, err
	}
	metrics.SeatReleases.Inc()
	utils.LogEventf(s.RequestID, "seat", "release", "trip_id=%d passenger_id=%d seat=%d", tripID, passengerID, prev)
	return released, nil
}

func findPassenger(passengers []models.Passenger, id int64) (models.Passenger, bool) {
	for _, p := range passengers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Passenger{}, false
}

func assignResult(err error) string {
	switch {
	case domain.IsConflict(err):
		return "conflict"
	case domain.IsValidation(err):
		return "invalid"
	case domain.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}
