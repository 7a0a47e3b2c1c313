package model

// Seat statuses.  AVAILABLE and BOOKED are the only persisted values;
// SELECTED is a session-local overlay applied by the booking selection
// and never written to the seat inventory.
const (
	SeatStatusAvailable = "available"
	SeatStatusBooked    = "booked"
	SeatStatusSelected  = "selected"
)

// Seat is one bookable seat in a showtime's inventory.  The ID is
// unique within its showtime (row label + number, e.g. "A1"), and the
// number is unique within its row.
type Seat struct {
	ID         string `json:"id"`
	Row        string `json:"row"`
	Number     uint32 `json:"number"`
	Status     string `json:"status"`
	PriceCents uint32 `json:"price"`
}
