package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SagarGautam07/TickBuzz/internal/booking"
	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/SagarGautam07/TickBuzz/internal/repository"
)

func confirmFixture(t *testing.T) (*BookingHandler, *booking.Selection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := booking.NewStore(0)
	sel := store.Get("tok")
	sel.SelectMovie(&model.Movie{ID: "1", Title: "Inception"})
	sel.SelectShowtime(
		&model.Showtime{ID: "4", MovieID: "1", TheaterID: "2", Date: "2026-09-01", Time: "7:30 PM"},
		&model.Theater{ID: "2", Name: "Metro Cinema"},
	)
	require.Equal(t, booking.Applied, sel.SelectSeat(model.Seat{ID: "A1", Row: "A", Number: 1, Status: model.SeatStatusAvailable, PriceCents: 25000}))
	require.Equal(t, booking.Applied, sel.SelectSeat(model.Seat{ID: "E1", Row: "E", Number: 1, Status: model.SeatStatusAvailable, PriceCents: 35000}))

	h := NewBookingHandler(store, nil, nil, nil,
		repository.NewSeatRepo(db, "1"), repository.NewBookingRepo(db), "")
	return h, sel, mock
}

func confirmContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_token", "tok")
	return c, rec
}

func TestConfirmPersistsTotalOfBookedSeats(t *testing.T) {
	h, sel, mock := confirmFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seat_id FROM showtime_seats").
		WithArgs("4", model.SeatStatusAvailable, "A1", "E1").
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow("A1").AddRow("E1"))
	mock.ExpectExec("UPDATE showtime_seats SET status").
		WithArgs(model.SeatStatusBooked, "4", model.SeatStatusAvailable, "A1", "E1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	// The booking row's total must equal the sum of the seat rows
	// written with it (25000 + 35000).
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), "1", "4", "2", 60000).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	c, rec := confirmContext(t)
	require.NoError(t, h.Confirm(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPrice":60000`)
	assert.NotEmpty(t, sel.BookingCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmRejectsTakenSeatsAndKeepsSelection(t *testing.T) {
	h, sel, mock := confirmFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seat_id FROM showtime_seats").
		WithArgs("4", model.SeatStatusAvailable, "A1", "E1").
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow("A1"))
	mock.ExpectRollback()

	c, rec := confirmContext(t)
	require.NoError(t, h.Confirm(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"E1"`)
	assert.Empty(t, sel.BookingCode(), "selection stays unconfirmed")
	assert.Len(t, sel.Seats(), 2, "selection untouched so the client can adjust")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmWithEmptySelection(t *testing.T) {
	h, _, _ := confirmFixture(t)
	h.Sessions.Get("other").Reset()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_token", "other")

	require.NoError(t, h.Confirm(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
