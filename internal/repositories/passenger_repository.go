package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

const passengerColumns = `id, trip_id, COALESCE(full_name,''), COALESCE(document_id,''), COALESCE(phone,''),
	age, COALESCE(boarding_location,''), seat_number, COALESCE(is_lap_child,0), principal_id,
	COALESCE(group_color,''), group_number`

type PassengerRepository struct {
	DB *sql.DB
}

func (r PassengerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// floorSelect reads the cached floor label only when the column exists.
func (r PassengerRepository) floorSelect(ctx context.Context, db *sql.DB) (string, bool) {
	if intdb.HasColumn(ctx, db, "passengers", "floor_label") {
		return ", COALESCE(floor_label,'')", true
	}
	return ", ''", false
}

func scanPassenger(row rowScanner) (models.Passenger, error) {
	var (
		p         models.Passenger
		age       sql.NullInt64
		seat      sql.NullInt64
		principal sql.NullInt64
		group     sql.NullInt64
		color     string
	)
	if err := row.Scan(
		&p.ID,
		&p.TripID,
		&p.FullName,
		&p.DocumentID,
		&p.Phone,
		&age,
		&p.BoardingLocation,
		&seat,
		&p.IsLapChild,
		&principal,
		&color,
		&group,
		&p.FloorLabel,
	); err != nil {
		return models.Passenger{}, err
	}

	p.FullName = strings.TrimSpace(p.FullName)
	p.DocumentID = strings.TrimSpace(p.DocumentID)
	p.Phone = strings.TrimSpace(p.Phone)
	p.BoardingLocation = strings.TrimSpace(p.BoardingLocation)
	p.Age = intdb.IntPtr(age)
	if p.Age != nil && *p.Age < 0 {
		p.Age = nil
	}
	p.SeatNumber = intdb.IntPtr(seat)
	p.PrincipalID = intdb.Int64Ptr(principal)
	p.GroupColor = models.ParseGroupColor(color)
	if !p.GroupColor.Valid() {
		utils.LogEventf("", "passenger", "unknown_group_color", "passenger_id=%d color=%q", p.ID, color)
		p.GroupColor = ""
	}
	p.GroupNumber = intdb.IntPtr(group)
	if p.IsLapChild {
		p.SeatNumber = nil
		p.FloorLabel = ""
	}
	return p, nil
}

// GetByID fetches one passenger.
func (r PassengerRepository) GetByID(ctx context.Context, id int64) (models.Passenger, error) {
	if id <= 0 {
		return models.Passenger{}, domain.ValidationError{Field: "passenger_id", Msg: "invalid passenger id"}
	}
	db := r.db()
	if db == nil {
		return models.Passenger{}, domain.InternalError{Msg: "db not available"}
	}
	floor, _ := r.floorSelect(ctx, db)
	p, err := scanPassenger(db.QueryRowContext(ctx, `SELECT `+passengerColumns+floor+` FROM passengers WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Passenger{}, domain.NotFoundError{Resource: "passenger", Err: err}
		}
		return models.Passenger{}, fmt.Errorf("get passenger %d: %w", id, err)
	}
	return p, nil
}

// ListByTrip returns all passengers of a trip in insertion order.
func (r PassengerRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Passenger, error) {
	if tripID <= 0 {
		return nil, domain.ValidationError{Field: "trip_id", Err: domain.ErrNoTripSelected}
	}
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "db not available"}
	}
	floor, _ := r.floorSelect(ctx, db)
	rows, err := db.QueryContext(ctx, `SELECT `+passengerColumns+floor+` FROM passengers WHERE trip_id=? ORDER BY id ASC`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list passengers of trip %d: %w", tripID, err)
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ValidatePassenger rejects records the store must not hold.
func ValidatePassenger(p models.Passenger) error {
	if p.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid passenger id"}
	}
	if p.Age != nil && *p.Age < 0 {
		return domain.ValidationError{Field: "age", Msg: "age must not be negative"}
	}
	if p.IsLapChild && p.SeatNumber != nil {
		return domain.ValidationError{Field: "seat_number", Err: domain.ErrLapChildSeat}
	}
	if p.SeatNumber != nil && *p.SeatNumber <= 0 {
		return domain.ValidationError{Field: "seat_number", Msg: "seat number must be positive"}
	}
	if !p.GroupColor.Valid() {
		return domain.ValidationError{Field: "group_color", Msg: fmt.Sprintf("unknown group color %q", string(p.GroupColor))}
	}
	return nil
}

// Update writes the full passenger record. floor_label is written only when
// the column exists.
func (r PassengerRepository) Update(ctx context.Context, p models.Passenger) error {
	if err := ValidatePassenger(p); err != nil {
		return err
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "db not available"}
	}

	sets := []string{
		"full_name=?",
		"document_id=?",
		"phone=?",
		"age=?",
		"boarding_location=?",
		"seat_number=?",
		"is_lap_child=?",
		"principal_id=?",
		"group_color=?",
		"group_number=?",
	}
	args := []any{
		strings.TrimSpace(p.FullName),
		intdb.NullIfEmpty(strings.TrimSpace(p.DocumentID)),
		intdb.NullIfEmpty(strings.TrimSpace(p.Phone)),
		intdb.NullInt(p.Age),
		intdb.NullIfEmpty(strings.TrimSpace(p.BoardingLocation)),
		intdb.NullInt(p.SeatNumber),
		p.IsLapChild,
		intdb.NullInt64(p.PrincipalID),
		intdb.NullIfEmpty(string(p.GroupColor)),
		intdb.NullInt(p.GroupNumber),
	}
	if _, hasFloor := r.floorSelect(ctx, db); hasFloor {
		sets = append(sets, "floor_label=?")
		args = append(args, intdb.NullIfEmpty(p.FloorLabel))
	}
	args = append(args, p.ID)

	res, err := db.ExecContext(ctx, `UPDATE passengers SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil {
		return fmt.Errorf("update passenger %d: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update passenger %d: %w", p.ID, err)
	}
	if n > 0 {
		return nil
	}
	// MySQL reports 0 for a matched row whose values did not change.
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers WHERE id=?`, p.ID).Scan(&count); err != nil {
		return fmt.Errorf("update passenger %d: %w", p.ID, err)
	}
	if count == 0 {
		return domain.NotFoundError{Resource: "passenger"}
	}
	return nil
}
