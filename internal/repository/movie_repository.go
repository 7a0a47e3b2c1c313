package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

// ErrMovieNotFound is returned when a movie id has no matching row.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo encapsulates all database queries related to movies.  The
// genres column holds a JSON array; it is marshalled on write and
// unmarshalled on read so callers only ever see []string.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieCols = "id, title, poster, background_image, genres, duration_min, language, rating, description, release_date, studio, created_at, updated_at"

func scanMovie(row interface{ Scan(...any) error }) (*model.Movie, error) {
	var (
		m      model.Movie
		genres []byte
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Poster, &m.BackgroundImage, &genres, &m.Duration,
		&m.Language, &m.Rating, &m.Description, &m.ReleaseDate, &m.Studio, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if len(genres) > 0 {
		if err := json.Unmarshal(genres, &m.Genres); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// List returns the full unfiltered movie collection ordered by id.
// Filtering and searching happen client-side or through Search.
func (r *MovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+movieCols+" FROM movies ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by its id.  It returns ErrMovieNotFound when
// no row matches.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	m, err := scanMovie(r.db.QueryRowContext(ctx, "SELECT "+movieCols+" FROM movies WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// Search returns movies matching an optional free-text query against
// the title, plus optional exact genre and language filters.  Empty
// parameters are ignored; with all parameters empty it behaves like
// List.
func (r *MovieRepo) Search(ctx context.Context, query, genre, language string) ([]*model.Movie, error) {
	q := "SELECT " + movieCols + " FROM movies WHERE 1=1"
	var args []any
	if s := strings.TrimSpace(query); s != "" {
		q += " AND title LIKE ?"
		args = append(args, "%"+s+"%")
	}
	if g := strings.TrimSpace(genre); g != "" {
		// genres is a JSON array of strings, e.g. ["Action","Sci-Fi"]
		q += " AND JSON_CONTAINS(genres, JSON_QUOTE(?))"
		args = append(args, g)
	}
	if l := strings.TrimSpace(language); l != "" {
		q += " AND language = ?"
		args = append(args, l)
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new movie.  A duplicate id surfaces as ErrConflict.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	genres, err := json.Marshal(m.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO movies (id, title, poster, background_image, genres, duration_min, language, rating, description, release_date, studio)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, m.ID, m.Title, m.Poster, m.BackgroundImage, genres,
		m.Duration, m.Language, m.Rating, m.Description, m.ReleaseDate, m.Studio); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Update rewrites every mutable field of the movie with the given id.
// It returns ErrMovieNotFound when no row was affected so the handler
// can distinguish a missing record from a successful no-change write.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	genres, err := json.Marshal(m.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE movies
	           SET title = ?, poster = ?, background_image = ?, genres = ?, duration_min = ?,
	               language = ?, rating = ?, description = ?, release_date = ?, studio = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Poster, m.BackgroundImage, genres, m.Duration,
		m.Language, m.Rating, m.Description, m.ReleaseDate, m.Studio, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports zero affected rows for identical values too, so
		// re-check existence before declaring the movie missing.
		if _, err := r.GetByID(ctx, m.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a movie by id.  It returns ErrMovieNotFound when the
// id was not present; the collection is left unchanged in that case.
func (r *MovieRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
