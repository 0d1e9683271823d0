package handlers

import (
	"context"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
)

// TripCatalog is the trip store plus the listing used by the trips endpoint.
type TripCatalog interface {
	services.TripStore
	List(ctx context.Context, f repositories.TripFilter) ([]models.Trip, error)
}

// DocumentArchive stores and serves generated documents.
type DocumentArchive interface {
	services.DocumentStore
	GetByID(ctx context.Context, id string) (models.Document, error)
}

// UserFinder resolves login credentials.
type UserFinder interface {
	FindByLogin(ctx context.Context, login string) (models.User, error)
}

// Stores used by the handlers. Tests swap them for in-memory fakes.
var (
	Trips      TripCatalog             = repositories.TripsRepository{}
	Passengers services.PassengerStore = repositories.PassengerRepository{}
	Documents  DocumentArchive         = repositories.DocumentRepository{}
	Users      UserFinder              = repositories.UsersRepository{}
)
