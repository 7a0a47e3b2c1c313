package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/SagarGautam07/TickBuzz/internal/utils"
)

// seatFixture mirrors one entry of seats.json: a map from showtime id
// to that showtime's seat list.
type seatFixture map[string][]model.Seat

// Seed loads the JSON fixtures from dataDir into empty tables and
// creates the default admin account when none exists.  Tables that
// already hold rows are left untouched, so restarting the server never
// clobbers admin edits or booked seats.
func Seed(ctx context.Context, db *sql.DB, dataDir, adminEmail, adminPassword string, bcryptCost int) error {
	if err := seedMovies(ctx, db, filepath.Join(dataDir, "movies.json")); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}
	if err := seedTheaters(ctx, db, filepath.Join(dataDir, "theaters.json")); err != nil {
		return fmt.Errorf("seed theaters: %w", err)
	}
	if err := seedShowtimes(ctx, db, filepath.Join(dataDir, "showtimes.json")); err != nil {
		return fmt.Errorf("seed showtimes: %w", err)
	}
	if err := seedSeats(ctx, db, filepath.Join(dataDir, "seats.json")); err != nil {
		return fmt.Errorf("seed seats: %w", err)
	}
	if err := seedAdmin(ctx, db, adminEmail, adminPassword, bcryptCost); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func readFixture(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func seedMovies(ctx context.Context, db *sql.DB, path string) error {
	empty, err := tableEmpty(ctx, db, "movies")
	if err != nil || !empty {
		return err
	}
	var movies []model.Movie
	if err := readFixture(path, &movies); err != nil {
		return err
	}
	for _, m := range movies {
		genres, err := json.Marshal(m.Genres)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO movies (id, title, poster, background_image, genres, duration_min, language, rating, description, release_date, studio)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Title, m.Poster, m.BackgroundImage, genres, m.Duration, m.Language,
			m.Rating, m.Description, m.ReleaseDate, m.Studio); err != nil {
			return err
		}
	}
	log.Printf("seed: loaded %d movies", len(movies))
	return nil
}

func seedTheaters(ctx context.Context, db *sql.DB, path string) error {
	empty, err := tableEmpty(ctx, db, "theaters")
	if err != nil || !empty {
		return err
	}
	var theaters []model.Theater
	if err := readFixture(path, &theaters); err != nil {
		return err
	}
	for _, t := range theaters {
		features, err := json.Marshal(t.Features)
		if err != nil {
			return err
		}
		hours, err := json.Marshal(t.OperatingHours)
		if err != nil {
			return err
		}
		status := t.Status
		if status == "" {
			status = model.TheaterStatusActive
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO theaters (id, name, location, city, state, zip_code, phone, email, capacity, screens, features, operating_hours, image, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Name, t.Location, t.City, t.State, t.ZipCode, t.Phone, t.Email,
			t.Capacity, t.Screens, features, hours, t.Image, status); err != nil {
			return err
		}
	}
	log.Printf("seed: loaded %d theaters", len(theaters))
	return nil
}

func seedShowtimes(ctx context.Context, db *sql.DB, path string) error {
	empty, err := tableEmpty(ctx, db, "showtimes")
	if err != nil || !empty {
		return err
	}
	var showtimes []model.Showtime
	if err := readFixture(path, &showtimes); err != nil {
		return err
	}
	for _, st := range showtimes {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO showtimes (id, movie_id, theater_id, show_date, show_time, price_cents)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			st.ID, st.MovieID, st.TheaterID, st.Date, st.Time, st.PriceCents); err != nil {
			return err
		}
	}
	log.Printf("seed: loaded %d showtimes", len(showtimes))
	return nil
}

func seedSeats(ctx context.Context, db *sql.DB, path string) error {
	empty, err := tableEmpty(ctx, db, "showtime_seats")
	if err != nil || !empty {
		return err
	}
	var fixture seatFixture
	if err := readFixture(path, &fixture); err != nil {
		return err
	}
	total := 0
	for showtimeID, seats := range fixture {
		for _, s := range seats {
			status := s.Status
			if status != model.SeatStatusBooked {
				// "selected" never persists; anything else starts available.
				status = model.SeatStatusAvailable
			}
			if _, err := db.ExecContext(ctx,
				`INSERT INTO showtime_seats (showtime_id, seat_id, row_label, seat_number, status, price_cents)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				showtimeID, s.ID, s.Row, s.Number, status, s.PriceCents); err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("seed: loaded %d seats across %d showtimes", total, len(fixture))
	return nil
}

func seedAdmin(ctx context.Context, db *sql.DB, email, password string, cost int) error {
	if password == "" {
		return nil // no default admin without an explicit password
	}
	empty, err := tableEmpty(ctx, db, "admins")
	if err != nil || !empty {
		return err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO admins (email, password_hash) VALUES (?, ?)", email, hash); err != nil {
		return err
	}
	log.Printf("seed: created default admin %s", email)
	return nil
}
