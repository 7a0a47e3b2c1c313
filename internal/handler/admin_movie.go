package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/SagarGautam07/TickBuzz/internal/repository"
	"github.com/SagarGautam07/TickBuzz/internal/validate"
)

// MovieStore is the slice of the movie repository the admin handler
// needs. Satisfied by *repository.MovieRepo.
type MovieStore interface {
	List(ctx context.Context) ([]*model.Movie, error)
	Create(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id string) error
}

// AdminMovieHandler provides movie catalog management. All routes sit
// behind JWT auth with the ADMIN role.
type AdminMovieHandler struct {
	Movies MovieStore
}

func NewAdminMovieHandler(m MovieStore) *AdminMovieHandler {
	return &AdminMovieHandler{Movies: m}
}

func movieFromInput(id string, in validate.MovieInput) *model.Movie {
	return &model.Movie{
		ID:              id,
		Title:           in.Title,
		Poster:          in.Poster,
		BackgroundImage: in.BackgroundImage,
		Genres:          in.Genres,
		Duration:        in.Duration,
		Language:        in.Language,
		Rating:          in.Rating,
		Description:     in.Description,
		ReleaseDate:     in.ReleaseDate,
		Studio:          in.Studio,
	}
}

// List returns the catalog through the authenticated surface, bypassing
// the public response cache.
func (h *AdminMovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies, "count": len(movies)})
}

// Create adds a movie to the catalog under a freshly minted id.
func (h *AdminMovieHandler) Create(c echo.Context) error {
	var in validate.MovieInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := movieFromInput(uuid.NewString(), in)
	if err := h.Movies.Create(ctx, m); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "movie already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update replaces every mutable field of an existing movie.
func (h *AdminMovieHandler) Update(c echo.Context) error {
	var in validate.MovieInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := movieFromInput(c.Param("id"), in)
	if err := h.Movies.Update(ctx, m); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes a movie. Existing showtimes keep their movie id so
// already-issued bookings stay resolvable.
func (h *AdminMovieHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.Delete(ctx, c.Param("id")); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
