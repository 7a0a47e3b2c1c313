package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SagarGautam07/TickBuzz/internal/booking"
	"github.com/SagarGautam07/TickBuzz/internal/model"
)

func gridSeat(id, row string, number uint32, status string) model.Seat {
	return model.Seat{ID: id, Row: row, Number: number, Status: status, PriceCents: 25000}
}

func TestGroupByRowSortsRowsAndSeats(t *testing.T) {
	seats := []model.Seat{
		gridSeat("B2", "B", 2, model.SeatStatusAvailable),
		gridSeat("A3", "A", 3, model.SeatStatusBooked),
		gridSeat("B1", "B", 1, model.SeatStatusAvailable),
		gridSeat("A1", "A", 1, model.SeatStatusAvailable),
	}

	rows := groupByRow(seats)
	require.Len(t, rows, 2)

	assert.Equal(t, "A", rows[0].Row)
	require.Len(t, rows[0].Seats, 2)
	assert.Equal(t, "A1", rows[0].Seats[0].ID)
	assert.Equal(t, "A3", rows[0].Seats[1].ID)

	assert.Equal(t, "B", rows[1].Row)
	assert.Equal(t, "B1", rows[1].Seats[0].ID)
	assert.Equal(t, "B2", rows[1].Seats[1].ID)
}

func TestGroupByRowEmpty(t *testing.T) {
	assert.Empty(t, groupByRow(nil))
}

func TestOverlaySelectedMarksHeldSeats(t *testing.T) {
	sel := booking.NewSelection()
	sel.SelectMovie(&model.Movie{ID: "1", Title: "Inception"})
	sel.SelectShowtime(&model.Showtime{ID: "7", MovieID: "1", TheaterID: "1"}, &model.Theater{ID: "1"})
	require.Equal(t, booking.Applied, sel.SelectSeat(gridSeat("A1", "A", 1, model.SeatStatusAvailable)))

	seats := []model.Seat{
		gridSeat("A1", "A", 1, model.SeatStatusAvailable),
		gridSeat("A2", "A", 2, model.SeatStatusAvailable),
		gridSeat("A3", "A", 3, model.SeatStatusBooked),
	}
	overlaySelected(seats, sel, "7")

	assert.Equal(t, model.SeatStatusSelected, seats[0].Status)
	assert.Equal(t, model.SeatStatusAvailable, seats[1].Status)
	assert.Equal(t, model.SeatStatusBooked, seats[2].Status)
}

func TestOverlaySelectedIgnoresOtherShowtime(t *testing.T) {
	sel := booking.NewSelection()
	sel.SelectMovie(&model.Movie{ID: "1"})
	sel.SelectShowtime(&model.Showtime{ID: "7", MovieID: "1", TheaterID: "1"}, &model.Theater{ID: "1"})
	require.Equal(t, booking.Applied, sel.SelectSeat(gridSeat("A1", "A", 1, model.SeatStatusAvailable)))

	seats := []model.Seat{gridSeat("A1", "A", 1, model.SeatStatusAvailable)}
	overlaySelected(seats, sel, "8")

	assert.Equal(t, model.SeatStatusAvailable, seats[0].Status)
}

func TestOverlaySelectedNilSelection(t *testing.T) {
	seats := []model.Seat{gridSeat("A1", "A", 1, model.SeatStatusAvailable)}
	overlaySelected(seats, nil, "1")
	assert.Equal(t, model.SeatStatusAvailable, seats[0].Status)
}
