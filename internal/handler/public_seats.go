package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/booking"
	"github.com/SagarGautam07/TickBuzz/internal/middleware"
	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/SagarGautam07/TickBuzz/internal/repository"
)

// SeatHandler serves the per-showtime seat grid.
type SeatHandler struct {
	Seats    *repository.SeatRepo
	Sessions *booking.Store
}

func NewSeatHandler(s *repository.SeatRepo, store *booking.Store) *SeatHandler {
	return &SeatHandler{Seats: s, Sessions: store}
}

// seatRow is one row of the rendered seat grid, seats ordered by number.
type seatRow struct {
	Row   string       `json:"row"`
	Seats []model.Seat `json:"seats"`
}

// ListSeats returns the seat grid for a showtime, grouped into rows.
// When the caller has a booking session with this same showtime selected,
// its selected seats are overlaid so the grid reflects the in-progress
// choice without persisting anything.
func (h *SeatHandler) ListSeats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	showtimeID := c.Param("id")
	seats, err := h.Seats.ListByShowtime(ctx, showtimeID)
	if err != nil {
		if err == repository.ErrNoSeatInventory {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no seats for showtime"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if h.Sessions != nil {
		if token := middleware.SessionToken(c); token != "" {
			overlaySelected(seats, h.Sessions.Get(token), showtimeID)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"showtimeId": showtimeID,
		"rows":       groupByRow(seats),
	})
}

// overlaySelected marks seats the session currently holds as selected.
// Only applies when the session's selected showtime matches the grid.
func overlaySelected(seats []model.Seat, sel *booking.Selection, showtimeID string) {
	if sel == nil {
		return
	}
	st := sel.Showtime()
	if st == nil || st.ID != showtimeID {
		return
	}
	held := make(map[string]bool)
	for _, s := range sel.Seats() {
		held[s.ID] = true
	}
	for i := range seats {
		if held[seats[i].ID] && seats[i].Status == model.SeatStatusAvailable {
			seats[i].Status = model.SeatStatusSelected
		}
	}
}

// groupByRow folds a flat seat list into rows sorted by label, with
// seats inside each row sorted by number.
func groupByRow(seats []model.Seat) []seatRow {
	byRow := make(map[string][]model.Seat)
	for _, s := range seats {
		byRow[s.Row] = append(byRow[s.Row], s)
	}
	labels := make([]string, 0, len(byRow))
	for label := range byRow {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]seatRow, 0, len(labels))
	for _, label := range labels {
		rs := byRow[label]
		sort.Slice(rs, func(i, j int) bool { return rs[i].Number < rs[j].Number })
		rows = append(rows, seatRow{Row: label, Seats: rs})
	}
	return rows
}
