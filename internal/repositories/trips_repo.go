package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

const tripColumns = `id, COALESCE(name,''), COALESCE(destination,''), COALESCE(vehicle_model,''),
	COALESCE(capacity,0), departure_date, return_date`

type TripsRepository struct {
	DB *sql.DB
}

func (r TripsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var (
		t         models.Trip
		model     string
		departure sql.NullTime
		ret       sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Destination, &model, &t.Capacity, &departure, &ret); err != nil {
		return models.Trip{}, err
	}
	t.Name = strings.TrimSpace(t.Name)
	t.Destination = strings.TrimSpace(t.Destination)
	t.VehicleModel = models.ParseVehicleModel(model)
	if departure.Valid {
		d := departure.Time
		t.DepartureDate = &d
	}
	if ret.Valid {
		d := ret.Time
		t.ReturnDate = &d
	}
	return t, nil
}

// GetByID fetches one trip.
func (r TripsRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "trip_id", Err: domain.ErrNoTripSelected}
	}
	db := r.db()
	if db == nil {
		return models.Trip{}, domain.InternalError{Msg: "db not available"}
	}
	t, err := scanTrip(db.QueryRowContext(ctx, `SELECT `+tripColumns+` FROM trips WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return models.Trip{}, fmt.Errorf("get trip %d: %w", id, err)
	}
	return t, nil
}

// TripFilter narrows List. Zero values match everything.
type TripFilter struct {
	Destination string
	From        *time.Time
}

// List returns trips, most recent departure first.
func (r TripsRepository) List(ctx context.Context, f TripFilter) ([]models.Trip, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "db not available"}
	}

	where := []string{"1=1"}
	args := []any{}
	if d := strings.TrimSpace(f.Destination); d != "" {
		where = append(where, "destination LIKE ?")
		args = append(args, "%"+d+"%")
	}
	if f.From != nil {
		where = append(where, "departure_date >= ?")
		args = append(args, *f.From)
	}
	query := `SELECT ` + tripColumns + ` FROM trips WHERE ` + strings.Join(where, " AND ") + ` ORDER BY departure_date DESC, id DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
