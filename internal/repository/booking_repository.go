package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

// ErrBookingNotFound is returned when a confirmation code has no
// matching booking.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo persists confirmed bookings and their seats.  Rows are
// written only inside the confirmation transaction, together with the
// seat inventory update, so a booking can never exist without its
// seats having flipped to booked.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the provided DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateTx inserts the booking and its seat rows within the supplied
// transaction.  On success the booking's ID field is populated.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings (code, movie_id, showtime_id, theater_id, total_price_cents)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, b.Code, b.MovieID, b.ShowtimeID, b.TheaterID, b.TotalPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	if len(b.Seats) == 0 {
		return nil
	}
	ins := `INSERT INTO booking_seats (booking_id, seat_id, row_label, seat_number, price_cents) VALUES `
	args := make([]any, 0, len(b.Seats)*5)
	for i, s := range b.Seats {
		if i > 0 {
			ins += ","
		}
		ins += "(?, ?, ?, ?, ?)"
		args = append(args, b.ID, s.ID, s.Row, s.Number, s.PriceCents)
	}
	_, err = tx.ExecContext(ctx, ins, args...)
	return err
}

// GetByCode loads a booking and its seats by confirmation code for the
// confirmation display.  It returns ErrBookingNotFound when the code
// is unknown.
func (r *BookingRepo) GetByCode(ctx context.Context, code string) (*model.Booking, error) {
	const q = `SELECT id, code, movie_id, showtime_id, theater_id, total_price_cents, created_at
	           FROM bookings WHERE code = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, code).
		Scan(&b.ID, &b.Code, &b.MovieID, &b.ShowtimeID, &b.TheaterID, &b.TotalPriceCents, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	const qs = `SELECT seat_id, row_label, seat_number, price_cents
	            FROM booking_seats WHERE booking_id = ? ORDER BY row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, qs, b.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		s := model.Seat{Status: model.SeatStatusBooked}
		if err := rows.Scan(&s.ID, &s.Row, &s.Number, &s.PriceCents); err != nil {
			return nil, err
		}
		b.Seats = append(b.Seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns all bookings ordered by creation time, newest first.
// Used by the admin dashboard overview.
func (r *BookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	const q = `SELECT id, code, movie_id, showtime_id, theater_id, total_price_cents, created_at
	           FROM bookings ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Code, &b.MovieID, &b.ShowtimeID, &b.TheaterID, &b.TotalPriceCents, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
