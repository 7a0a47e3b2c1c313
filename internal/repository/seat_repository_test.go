package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

var seatCols = []string{"seat_id", "row_label", "seat_number", "status", "price_cents"}

const (
	seatSelect = "SELECT seat_id, row_label, seat_number, status, price_cents"
	seatCopy   = "INSERT IGNORE INTO showtime_seats"
	seatFlip   = "UPDATE showtime_seats SET status"
)

func newSeatMock(t *testing.T, fallback string) (*SeatRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSeatRepo(db, fallback), mock
}

func TestListByShowtimeServesOwnRows(t *testing.T) {
	repo, mock := newSeatMock(t, "1")

	mock.ExpectQuery(seatSelect).WithArgs("2").WillReturnRows(
		sqlmock.NewRows(seatCols).
			AddRow("A1", "A", 1, "available", 25000).
			AddRow("A2", "A", 2, "booked", 25000))

	seats, err := repo.ListByShowtime(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, "A2", seats[1].ID)
	assert.Equal(t, model.SeatStatusBooked, seats[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByShowtimeMaterializesFallback(t *testing.T) {
	repo, mock := newSeatMock(t, "1")

	mock.ExpectQuery(seatSelect).WithArgs("4").
		WillReturnRows(sqlmock.NewRows(seatCols))
	mock.ExpectExec(seatCopy).WithArgs("4", "1", "4").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(seatSelect).WithArgs("4").WillReturnRows(
		sqlmock.NewRows(seatCols).
			AddRow("A1", "A", 1, "available", 25000).
			AddRow("A2", "A", 2, "available", 25000))

	seats, err := repo.ListByShowtime(context.Background(), "4")
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByShowtimeUnknownShowtime(t *testing.T) {
	repo, mock := newSeatMock(t, "1")

	// The copy's EXISTS guard inserts nothing for an id with no
	// showtimes row, so the second read stays empty.
	mock.ExpectQuery(seatSelect).WithArgs("999").
		WillReturnRows(sqlmock.NewRows(seatCols))
	mock.ExpectExec(seatCopy).WithArgs("999", "1", "999").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(seatSelect).WithArgs("999").
		WillReturnRows(sqlmock.NewRows(seatCols))

	_, err := repo.ListByShowtime(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNoSeatInventory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByShowtimeFallbackDisabled(t *testing.T) {
	repo, mock := newSeatMock(t, "")

	mock.ExpectQuery(seatSelect).WithArgs("4").
		WillReturnRows(sqlmock.NewRows(seatCols))

	_, err := repo.ListByShowtime(context.Background(), "4")
	assert.ErrorIs(t, err, ErrNoSeatInventory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A showtime served from the fallback layout must be bookable: the
// copied rows carry the showtime's own id, so the conditional flip at
// confirmation operates on real inventory.
func TestFallbackShowtimeThenBookTx(t *testing.T) {
	repo, mock := newSeatMock(t, "1")
	ctx := context.Background()

	mock.ExpectQuery(seatSelect).WithArgs("4").
		WillReturnRows(sqlmock.NewRows(seatCols))
	mock.ExpectExec(seatCopy).WithArgs("4", "1", "4").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(seatSelect).WithArgs("4").WillReturnRows(
		sqlmock.NewRows(seatCols).
			AddRow("A1", "A", 1, "available", 25000).
			AddRow("A2", "A", 2, "available", 25000))

	seats, err := repo.ListByShowtime(ctx, "4")
	require.NoError(t, err)
	require.Len(t, seats, 2)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seat_id FROM showtime_seats").
		WithArgs("4", model.SeatStatusAvailable, "A1", "A2").
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow("A1").AddRow("A2"))
	mock.ExpectExec(seatFlip).
		WithArgs(model.SeatStatusBooked, "4", model.SeatStatusAvailable, "A1", "A2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	tx, err := repo.DB().Begin()
	require.NoError(t, err)
	require.NoError(t, repo.BookTx(ctx, tx, "4", []string{"A1", "A2"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookTxReportsTakenSeats(t *testing.T) {
	repo, mock := newSeatMock(t, "1")
	ctx := context.Background()

	// Only A1 is still available; A2 was taken by another session, so
	// the flip never runs and A2 alone is reported.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seat_id FROM showtime_seats").
		WithArgs("2", model.SeatStatusAvailable, "A1", "A2").
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow("A1"))

	tx, err := repo.DB().Begin()
	require.NoError(t, err)

	err = repo.BookTx(ctx, tx, "2", []string{"A1", "A2"})
	var unavailable *SeatsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"A2"}, unavailable.SeatIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
