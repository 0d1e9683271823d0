package services

import (
	"context"
	"sort"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type memStore struct {
	trips      map[int64]models.Trip
	passengers map[int64]models.Passenger
	documents  []models.Document
	updates    []models.Passenger
}

func newMemStore(trips []models.Trip, passengers ...models.Passenger) *memStore {
	s := &memStore{trips: map[int64]models.Trip{}, passengers: map[int64]models.Passenger{}}
	for _, t := range trips {
		s.trips[t.ID] = t
	}
	for _, p := range passengers {
		s.passengers[p.ID] = p
	}
	return s
}

func (s *memStore) GetByID(_ context.Context, id int64) (models.Trip, error) {
	t, ok := s.trips[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, nil
}

type memPassengers struct{ *memStore }

func (s memPassengers) GetByID(_ context.Context, id int64) (models.Passenger, error) {
	p, ok := s.passengers[id]
	if !ok {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	}
	return p, nil
}

func (s memPassengers) ListByTrip(_ context.Context, tripID int64) ([]models.Passenger, error) {
	out := []models.Passenger{}
	for _, p := range s.passengers {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memPassengers) Update(_ context.Context, p models.Passenger) error {
	s.passengers[p.ID] = p
	s.updates = append(s.updates, p)
	return nil
}

func (s *memStore) Create(_ context.Context, doc models.Document) error {
	s.documents = append(s.documents, doc)
	return nil
}

func seated(id, tripID int64, name string, seat int) models.Passenger {
	return models.Passenger{ID: id, TripID: tripID, FullName: name, SeatNumber: models.IntPtr(seat)}
}

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
