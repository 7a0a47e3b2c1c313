package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/booking"
	"github.com/SagarGautam07/TickBuzz/internal/middleware"
	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/SagarGautam07/TickBuzz/internal/queue"
	"github.com/SagarGautam07/TickBuzz/internal/repository"
	queue_publisher "github.com/SagarGautam07/TickBuzz/internal/service"
	"github.com/SagarGautam07/TickBuzz/internal/utils"
)

// BookingHandler drives the seat-booking flow: the per-session selection
// endpoints plus confirmation, which is the only step that writes to the
// database.
type BookingHandler struct {
	Sessions  *booking.Store
	Movies    *repository.MovieRepo
	Theaters  *repository.TheaterRepo
	Showtimes *repository.ShowtimeRepo
	Seats     *repository.SeatRepo
	Bookings  *repository.BookingRepo

	// AMQPURL is the broker for booking.confirmed events; empty falls
	// back to the environment and then the local default.
	AMQPURL string
}

func NewBookingHandler(store *booking.Store, m *repository.MovieRepo, t *repository.TheaterRepo,
	st *repository.ShowtimeRepo, se *repository.SeatRepo, b *repository.BookingRepo, amqpURL string) *BookingHandler {
	return &BookingHandler{
		Sessions: store, Movies: m, Theaters: t, Showtimes: st, Seats: se, Bookings: b,
		AMQPURL: amqpURL,
	}
}

func (h *BookingHandler) selection(c echo.Context) *booking.Selection {
	return h.Sessions.Get(middleware.SessionToken(c))
}

// GetSession returns the session's current selection snapshot.
func (h *BookingHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, h.selection(c).Snapshot())
}

type selectMovieReq struct {
	MovieID string `json:"movieId"`
}

// SelectMovie sets the session's movie and clears any downstream choice.
func (h *BookingHandler) SelectMovie(c echo.Context) error {
	var req selectMovieReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.MovieID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movieId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.GetByID(ctx, req.MovieID)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	sel := h.selection(c)
	sel.SelectMovie(m)
	return c.JSON(http.StatusOK, sel.Snapshot())
}

type selectShowtimeReq struct {
	ShowtimeID string `json:"showtimeId"`
}

// SelectShowtime sets the session's showtime (and its theater) and
// clears the seat selection. Selecting a showtime for a different movie
// than the current one switches the movie as well.
func (h *BookingHandler) SelectShowtime(c echo.Context) error {
	var req selectShowtimeReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.ShowtimeID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtimeId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Showtimes.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		if err == repository.ErrShowtimeNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	th, err := h.Theaters.GetByID(ctx, st.TheaterID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	sel := h.selection(c)
	if cur := sel.Movie(); cur == nil || cur.ID != st.MovieID {
		m, err := h.Movies.GetByID(ctx, st.MovieID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		sel.SelectMovie(m)
	}
	sel.SelectShowtime(st, th)
	return c.JSON(http.StatusOK, sel.Snapshot())
}

type selectSeatReq struct {
	SeatID string `json:"seatId"`
}

// SelectSeat adds one seat to the session's selection. Booked seats and
// duplicates are rejected explicitly rather than ignored.
func (h *BookingHandler) SelectSeat(c echo.Context) error {
	var req selectSeatReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.SeatID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seatId required"})
	}

	sel := h.selection(c)
	st := sel.Showtime()
	if st == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no showtime selected"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	seats, err := h.Seats.ListByShowtime(ctx, st.ID)
	if err != nil {
		if err == repository.ErrNoSeatInventory {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no seats for showtime"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	var seat *model.Seat
	for i := range seats {
		if seats[i].ID == req.SeatID {
			seat = &seats[i]
			break
		}
	}
	if seat == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	}

	switch sel.SelectSeat(*seat) {
	case booking.RejectedBooked:
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat already booked", "seatId": seat.ID})
	case booking.RejectedDuplicate:
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat already selected", "seatId": seat.ID})
	}
	return c.JSON(http.StatusOK, sel.Snapshot())
}

// DeselectSeat removes one seat from the selection.
func (h *BookingHandler) DeselectSeat(c echo.Context) error {
	sel := h.selection(c)
	if sel.DeselectSeat(c.Param("seatId")) == booking.RejectedNotSelected {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not selected"})
	}
	return c.JSON(http.StatusOK, sel.Snapshot())
}

// ClearSeats empties the seat selection while keeping movie and showtime.
func (h *BookingHandler) ClearSeats(c echo.Context) error {
	sel := h.selection(c)
	sel.ClearSeats()
	return c.JSON(http.StatusOK, sel.Snapshot())
}

// Reset returns the session to its initial empty state.
func (h *BookingHandler) Reset(c echo.Context) error {
	sel := h.selection(c)
	sel.Reset()
	return c.JSON(http.StatusOK, sel.Snapshot())
}

// Confirm books the session's selected seats. The seat flips and the
// booking row commit in one transaction; a seat grabbed by a faster
// session in the meantime fails the whole booking with the offending
// seat ids and leaves the selection untouched.
func (h *BookingHandler) Confirm(c echo.Context) error {
	sel := h.selection(c)
	st := sel.Showtime()
	seats := sel.Seats()
	if st == nil || len(seats) == 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "nothing to confirm"})
	}

	code, err := utils.NewConfirmationCode()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "code generation failed"})
	}

	seatIDs := make([]string, len(seats))
	for i, s := range seats {
		seatIDs[i] = s.ID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.Seats.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	defer func() { _ = tx.Rollback() }()

	if err := h.Seats.BookTx(ctx, tx, st.ID, seatIDs); err != nil {
		var unavailable *repository.SeatsUnavailableError
		if errors.As(err, &unavailable) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   "seats no longer available",
				"seatIds": unavailable.SeatIDs,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	booked := make([]model.Seat, len(seats))
	copy(booked, seats)
	// Total is derived from the seat copy taken above, not read back
	// from the selection: an overlapping request on the same session
	// could mutate the selection between the two reads and persist a
	// total that disagrees with the booked seat rows.
	var total uint32
	for i := range booked {
		booked[i].Status = model.SeatStatusBooked
		total += booked[i].PriceCents
	}

	b := &model.Booking{
		Code:            code,
		MovieID:         st.MovieID,
		ShowtimeID:      st.ID,
		TheaterID:       st.TheaterID,
		Seats:           booked,
		TotalPriceCents: total,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.Bookings.CreateTx(ctx, tx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}

	sel.Confirm(code)
	h.publishConfirmed(sel, b)

	return c.JSON(http.StatusCreated, b)
}

// publishConfirmed emits the booking.confirmed event in the background.
// Broker failures are logged by the publisher and otherwise ignored; the
// booking is already committed.
func (h *BookingHandler) publishConfirmed(sel *booking.Selection, b *model.Booking) {
	ev := queue.BookingConfirmedEvent{
		Code:            b.Code,
		MovieID:         b.MovieID,
		TheaterID:       b.TheaterID,
		ShowtimeID:      b.ShowtimeID,
		TotalPriceCents: b.TotalPriceCents,
		ConfirmedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if m := sel.Movie(); m != nil {
		ev.MovieTitle = m.Title
	}
	if th := sel.Theater(); th != nil {
		ev.TheaterName = th.Name
	}
	if st := sel.Showtime(); st != nil {
		ev.ShowDate = st.Date
		ev.ShowTime = st.Time
	}
	for _, s := range b.Seats {
		ev.SeatLabels = append(ev.SeatLabels, s.ID)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingConfirmed(ctx, h.AMQPURL, ev)
	}()
}

// GetBooking looks a confirmed booking up by its confirmation code and
// hydrates the related catalog records for the confirmation page.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByCode(ctx, c.Param("code"))
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	resp := echo.Map{"booking": b}
	if m, err := h.Movies.GetByID(ctx, b.MovieID); err == nil {
		resp["movie"] = m
	}
	if th, err := h.Theaters.GetByID(ctx, b.TheaterID); err == nil {
		resp["theater"] = th
	}
	if st, err := h.Showtimes.GetByID(ctx, b.ShowtimeID); err == nil {
		resp["showtime"] = st
	}
	return c.JSON(http.StatusOK, resp)
}
