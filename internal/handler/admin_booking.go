package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/repository"
)

// AdminBookingHandler gives admins a read-only view over confirmed
// bookings.
type AdminBookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewAdminBookingHandler(b *repository.BookingRepo) *AdminBookingHandler {
	return &AdminBookingHandler{Bookings: b}
}

// List returns all bookings, newest first.
func (h *AdminBookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings, "count": len(bookings)})
}
