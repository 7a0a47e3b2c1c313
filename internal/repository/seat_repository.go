package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

// ErrNoSeatInventory is returned when a showtime has no seat rows and
// no fallback layout is configured.
var ErrNoSeatInventory = errors.New("no seat inventory for showtime")

// SeatRepo provides access to the per-showtime seat inventory.  A seat
// is identified within its showtime by its id (row label + number);
// the persisted status is only ever available or booked.
type SeatRepo struct {
	db *sql.DB

	// fallbackShowtime names the layout copied into showtimes that
	// have no seat rows of their own.  The original data set only
	// ships layouts for a handful of showtimes and serves a canned one
	// for the rest; the policy is kept but made explicit and durable
	// here.  Empty disables the fallback entirely, in which case
	// lookups on a showtime without rows fail with ErrNoSeatInventory.
	fallbackShowtime string
}

// NewSeatRepo constructs a SeatRepo.  fallbackShowtime selects the
// layout served for showtimes without their own inventory; pass ""
// to disable the fallback.
func NewSeatRepo(db *sql.DB, fallbackShowtime string) *SeatRepo {
	return &SeatRepo{db: db, fallbackShowtime: fallbackShowtime}
}

// DB exposes the underlying handle so handlers can open transactions
// that span seat and booking writes.
func (r *SeatRepo) DB() *sql.DB { return r.db }

// ListByShowtime returns the seat records for a showtime ordered by
// row and ascending seat number.  A known showtime with no rows of its
// own gets the configured fallback layout copied in as its own
// inventory on first access, so every seat served here is backed by a
// row that BookTx can later flip.  Unknown showtime ids never gain
// rows and report ErrNoSeatInventory.
func (r *SeatRepo) ListByShowtime(ctx context.Context, showtimeID string) ([]model.Seat, error) {
	seats, err := r.listExact(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if len(seats) > 0 {
		return seats, nil
	}
	if r.fallbackShowtime == "" || r.fallbackShowtime == showtimeID {
		return nil, ErrNoSeatInventory
	}
	if err := r.materializeFallback(ctx, showtimeID); err != nil {
		return nil, err
	}
	seats, err = r.listExact(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, ErrNoSeatInventory
	}
	return seats, nil
}

// materializeFallback copies the fallback showtime's layout into the
// given showtime's inventory.  INSERT IGNORE plus the (showtime_id,
// seat_id) primary key makes concurrent first reads collapse into one
// copy; the EXISTS guard keeps garbage showtime ids from acquiring
// rows.  Statuses are copied as-is so the served grid matches what the
// read-only fallback used to show.
func (r *SeatRepo) materializeFallback(ctx context.Context, showtimeID string) error {
	const q = `INSERT IGNORE INTO showtime_seats
	           (showtime_id, seat_id, row_label, seat_number, status, price_cents)
	           SELECT ?, seat_id, row_label, seat_number, status, price_cents
	           FROM showtime_seats
	           WHERE showtime_id = ?
	             AND EXISTS (SELECT 1 FROM showtimes WHERE id = ?)`
	_, err := r.db.ExecContext(ctx, q, showtimeID, r.fallbackShowtime, showtimeID)
	return err
}

func (r *SeatRepo) listExact(ctx context.Context, showtimeID string) ([]model.Seat, error) {
	const q = `SELECT seat_id, row_label, seat_number, status, price_cents
	           FROM showtime_seats
	           WHERE showtime_id = ?
	           ORDER BY row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.Row, &s.Number, &s.Status, &s.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// BookTx flips the given seats from available to booked within the
// supplied transaction.  The write is conditional: a seat that is no
// longer available is left untouched and reported through
// SeatsUnavailableError, in which case the caller must roll back so
// the whole confirmation fails atomically.
func (r *SeatRepo) BookTx(ctx context.Context, tx *sql.Tx, showtimeID string, seatIDs []string) error {
	if len(seatIDs) == 0 {
		return nil
	}
	q := `UPDATE showtime_seats SET status = ?, updated_at = CURRENT_TIMESTAMP
	      WHERE showtime_id = ? AND status = ? AND seat_id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]any, 0, len(seatIDs)+3)
	args = append(args, model.SeatStatusBooked, showtimeID, model.SeatStatusAvailable)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	// Check availability first, under row locks, so the error payload
	// names only the seats another session actually took.  Checking
	// after the flip would count our own freshly booked rows as taken.
	taken, err := r.unavailableTx(ctx, tx, showtimeID, seatIDs)
	if err != nil {
		return err
	}
	if len(taken) > 0 {
		return &SeatsUnavailableError{SeatIDs: taken}
	}

	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if int(n) != len(seatIDs) {
		return &SeatsUnavailableError{SeatIDs: seatIDs}
	}
	return nil
}

// unavailableTx returns the subset of seatIDs that is not currently
// available for the showtime, including ids with no inventory row.
// FOR UPDATE locks the surviving rows until the transaction ends so
// the check stays valid through the flip.
func (r *SeatRepo) unavailableTx(ctx context.Context, tx *sql.Tx, showtimeID string, seatIDs []string) ([]string, error) {
	q := `SELECT seat_id FROM showtime_seats
	      WHERE showtime_id = ? AND status = ? AND seat_id IN (` + placeholders(len(seatIDs)) + `)
	      FOR UPDATE`
	args := make([]any, 0, len(seatIDs)+2)
	args = append(args, showtimeID, model.SeatStatusAvailable)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	available := make(map[string]struct{}, len(seatIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		available[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	var taken []string
	for _, id := range seatIDs {
		if _, ok := available[id]; !ok {
			taken = append(taken, id)
		}
	}
	return taken, nil
}

// placeholders builds a "?, ?, ?" list for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
