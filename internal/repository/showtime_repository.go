package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

// ErrShowtimeNotFound is returned when a showtime id has no matching row.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ShowtimeRepo provides read access to scheduled screenings.  The
// booking flow treats showtimes as read-only; they are loaded from the
// seed fixtures at startup.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo constructs a ShowtimeRepo with the provided DB handle.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo { return &ShowtimeRepo{db: db} }

const showtimeCols = "id, movie_id, theater_id, show_date, show_time, price_cents"

// GetByID fetches a showtime by id, returning ErrShowtimeNotFound when
// no row matches.
func (r *ShowtimeRepo) GetByID(ctx context.Context, id string) (*model.Showtime, error) {
	var st model.Showtime
	err := r.db.QueryRowContext(ctx, "SELECT "+showtimeCols+" FROM showtimes WHERE id = ?", id).
		Scan(&st.ID, &st.MovieID, &st.TheaterID, &st.Date, &st.Time, &st.PriceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &st, nil
}

// ListByMovie returns all showtimes for a movie ordered by date, time
// and theater.  An unknown movie id yields an empty slice, not an
// error; the handler decides whether that warrants a 404.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID string) ([]*model.Showtime, error) {
	const q = "SELECT " + showtimeCols + ` FROM showtimes
	           WHERE movie_id = ? ORDER BY show_date, show_time, theater_id`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Showtime
	for rows.Next() {
		var st model.Showtime
		if err := rows.Scan(&st.ID, &st.MovieID, &st.TheaterID, &st.Date, &st.Time, &st.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
