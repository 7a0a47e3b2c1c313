package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

// ErrTheaterNotFound is returned when a theater id has no matching row.
var ErrTheaterNotFound = errors.New("theater not found")

// TheaterRepo encapsulates all database queries related to theaters.
// The features and operating_hours columns hold JSON documents so that
// the variable-shaped parts of a theater record stay schemaless while
// the scalar fields remain queryable columns.
type TheaterRepo struct {
	db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo with the provided DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

const theaterCols = "id, name, location, city, state, zip_code, phone, email, capacity, screens, features, operating_hours, image, status, created_at, updated_at"

func scanTheater(row interface{ Scan(...any) error }) (*model.Theater, error) {
	var (
		t        model.Theater
		features []byte
		hours    []byte
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Location, &t.City, &t.State, &t.ZipCode, &t.Phone, &t.Email,
		&t.Capacity, &t.Screens, &features, &hours, &t.Image, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &t.Features); err != nil {
			return nil, err
		}
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &t.OperatingHours); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// List returns the full unfiltered theater collection ordered by id.
func (r *TheaterRepo) List(ctx context.Context) ([]*model.Theater, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+theaterCols+" FROM theaters ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Theater
	for rows.Next() {
		t, err := scanTheater(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a theater by id, returning ErrTheaterNotFound when
// no row matches.
func (r *TheaterRepo) GetByID(ctx context.Context, id string) (*model.Theater, error) {
	t, err := scanTheater(r.db.QueryRowContext(ctx, "SELECT "+theaterCols+" FROM theaters WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheaterNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new theater.  A duplicate id surfaces as
// ErrConflict.
func (r *TheaterRepo) Create(ctx context.Context, t *model.Theater) error {
	features, err := json.Marshal(t.Features)
	if err != nil {
		return err
	}
	hours, err := json.Marshal(t.OperatingHours)
	if err != nil {
		return err
	}
	const q = `INSERT INTO theaters (id, name, location, city, state, zip_code, phone, email, capacity, screens, features, operating_hours, image, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, t.ID, t.Name, t.Location, t.City, t.State, t.ZipCode,
		t.Phone, t.Email, t.Capacity, t.Screens, features, hours, t.Image, t.Status); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Update rewrites every mutable field of the theater with the given id
// and returns ErrTheaterNotFound when the record does not exist.
func (r *TheaterRepo) Update(ctx context.Context, t *model.Theater) error {
	features, err := json.Marshal(t.Features)
	if err != nil {
		return err
	}
	hours, err := json.Marshal(t.OperatingHours)
	if err != nil {
		return err
	}
	const q = `UPDATE theaters
	           SET name = ?, location = ?, city = ?, state = ?, zip_code = ?, phone = ?, email = ?,
	               capacity = ?, screens = ?, features = ?, operating_hours = ?, image = ?, status = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.Name, t.Location, t.City, t.State, t.ZipCode, t.Phone,
		t.Email, t.Capacity, t.Screens, features, hours, t.Image, t.Status, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, t.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a theater by id, returning ErrTheaterNotFound when
// the id was not present.
func (r *TheaterRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM theaters WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTheaterNotFound
	}
	return nil
}
