package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func TestBuildOccupancyPartitionsPassengers(t *testing.T) {
	passengers := []models.Passenger{
		seated(1, 1, "Ana", 3),
		seated(2, 1, "Bruno", 7),
		{ID: 3, TripID: 1, FullName: "Carla"},
		{ID: 4, TripID: 1, FullName: "Davi", IsLapChild: true, PrincipalID: models.Int64Ptr(1)},
	}
	idx := BuildOccupancy(passengers)

	if idx.OccupiedCount() != 2 {
		t.Fatalf("expected 2 occupied seats, got %d", idx.OccupiedCount())
	}
	if p, ok := idx.Occupant(7); !ok || p.ID != 2 {
		t.Fatalf("seat 7 should be held by passenger 2, got %+v", p)
	}
	if len(idx.Unassigned) != 1 || idx.Unassigned[0].ID != 3 {
		t.Fatalf("unexpected unassigned list %+v", idx.Unassigned)
	}
	if len(idx.LapChildren) != 1 || idx.LapChildren[0].ID != 4 {
		t.Fatalf("lap child must be tracked separately, got %+v", idx.LapChildren)
	}
	total := idx.OccupiedCount() + len(idx.Unassigned) + len(idx.LapChildren) + len(idx.Conflicts)
	if total != len(passengers) {
		t.Fatalf("every passenger must be accounted once: %d vs %d", total, len(passengers))
	}
	if err := idx.Err(); err != nil {
		t.Fatalf("unexpected integrity error: %v", err)
	}
}

func TestBuildOccupancyLapChildWithSeatIsNotKeyed(t *testing.T) {
	lap := models.Passenger{ID: 9, TripID: 1, IsLapChild: true, SeatNumber: models.IntPtr(5)}
	idx := BuildOccupancy([]models.Passenger{lap})
	if _, ok := idx.Occupant(5); ok {
		t.Fatalf("lap child must never hold a seat key")
	}
	if len(idx.Unassigned) != 0 {
		t.Fatalf("lap child must not be reported as unassigned")
	}
}

func TestBuildOccupancyDuplicateSeat(t *testing.T) {
	idx := BuildOccupancy([]models.Passenger{
		seated(1, 1, "Ana", 12),
		seated(2, 1, "Bruno", 12),
	})
	if p, _ := idx.Occupant(12); p.ID != 1 {
		t.Fatalf("first passenger should keep the seat, got %d", p.ID)
	}
	if len(idx.Conflicts) != 1 || idx.Conflicts[0].Duplicate.ID != 2 {
		t.Fatalf("unexpected conflicts %+v", idx.Conflicts)
	}
	err := idx.Err()
	if !domain.IsIntegrity(err) {
		t.Fatalf("expected integrity error, got %v", err)
	}
}

func TestFreeSeats(t *testing.T) {
	layout, _ := LayoutFor(models.VehicleVan, 4)
	idx := BuildOccupancy([]models.Passenger{seated(1, 1, "Ana", 2), seated(2, 1, "Bia", 4)})
	free := idx.FreeSeats(layout)
	if len(free) != 2 || free[0] != 1 || free[1] != 3 {
		t.Fatalf("unexpected free seats %v", free)
	}
}
