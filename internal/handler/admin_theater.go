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

// TheaterStore is the slice of the theater repository the admin handler
// needs. Satisfied by *repository.TheaterRepo.
type TheaterStore interface {
	List(ctx context.Context) ([]*model.Theater, error)
	Create(ctx context.Context, t *model.Theater) error
	Update(ctx context.Context, t *model.Theater) error
	Delete(ctx context.Context, id string) error
}

// AdminTheaterHandler provides theater catalog management.
type AdminTheaterHandler struct {
	Theaters TheaterStore
}

func NewAdminTheaterHandler(t TheaterStore) *AdminTheaterHandler {
	return &AdminTheaterHandler{Theaters: t}
}

func theaterFromInput(id string, in validate.TheaterInput) *model.Theater {
	return &model.Theater{
		ID:             id,
		Name:           in.Name,
		Location:       in.Location,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
		Phone:          in.Phone,
		Email:          in.Email,
		Capacity:       in.Capacity,
		Screens:        in.Screens,
		Features:       in.Features,
		OperatingHours: in.OperatingHours,
		Image:          in.Image,
		Status:         in.Status,
	}
}

// List returns all theaters through the authenticated surface.
func (h *AdminTheaterHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	theaters, err := h.Theaters.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"theaters": theaters, "count": len(theaters)})
}

// Create adds a theater under a freshly minted id.
func (h *AdminTheaterHandler) Create(c echo.Context) error {
	var in validate.TheaterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t := theaterFromInput(uuid.NewString(), in)
	if err := h.Theaters.Create(ctx, t); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "theater already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

// Update replaces every mutable field of an existing theater.
func (h *AdminTheaterHandler) Update(c echo.Context) error {
	var in validate.TheaterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t := theaterFromInput(c.Param("id"), in)
	if err := h.Theaters.Update(ctx, t); err != nil {
		if err == repository.ErrTheaterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, t)
}

// Delete removes a theater.
func (h *AdminTheaterHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Theaters.Delete(ctx, c.Param("id")); err != nil {
		if err == repository.ErrTheaterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
