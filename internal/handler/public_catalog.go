// Package handler exposes HTTP handlers for the public catalog, the
// booking flow and the admin endpoints. This file covers unauthenticated
// browsing: movies, theaters, showtimes and movie search.
package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/repository"
)

// CatalogHandler aggregates the repositories needed for browsing.
type CatalogHandler struct {
	Movies    *repository.MovieRepo
	Theaters  *repository.TheaterRepo
	Showtimes *repository.ShowtimeRepo
}

func NewCatalogHandler(m *repository.MovieRepo, t *repository.TheaterRepo, s *repository.ShowtimeRepo) *CatalogHandler {
	return &CatalogHandler{Movies: m, Theaters: t, Showtimes: s}
}

// ListMovies returns the whole movie catalog.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// GetMovie returns one movie by id.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// ListShowtimesByMovie returns a movie's showtimes ordered by date, time
// and theater. The movie must exist; a movie with no scheduled showtimes
// yields an empty list, not an error.
func (h *CatalogHandler) ListShowtimesByMovie(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movieID := c.Param("id")
	if _, err := h.Movies.GetByID(ctx, movieID); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	shows, err := h.Showtimes.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movieId": movieID, "showtimes": shows})
}

// ListTheaters returns every theater, including inactive ones; the
// status field lets clients decide what to display.
func (h *CatalogHandler) ListTheaters(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	theaters, err := h.Theaters.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"theaters": theaters})
}

// GetTheater returns one theater by id.
func (h *CatalogHandler) GetTheater(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Theaters.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrTheaterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, t)
}

// SearchMovies filters the catalog. q matches a title substring, genre
// matches one of the movie's genre tags exactly and language matches
// exactly; all three are optional and combine with AND.
func (h *CatalogHandler) SearchMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	query := strings.TrimSpace(c.QueryParam("q"))
	genre := strings.TrimSpace(c.QueryParam("genre"))
	language := strings.TrimSpace(c.QueryParam("language"))

	movies, err := h.Movies.Search(ctx, query, genre, language)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies, "count": len(movies)})
}
