package model

import "time"

// Booking is a confirmed seat booking.  Code is the opaque confirmation
// identifier minted at confirmation time; it round-trips through a URL
// path segment so the confirmation page can look the booking up again.
type Booking struct {
	ID              uint64    `json:"-"`
	Code            string    `json:"code"`
	MovieID         string    `json:"movieId"`
	ShowtimeID      string    `json:"showtimeId"`
	TheaterID       string    `json:"theaterId"`
	Seats           []Seat    `json:"seats"`
	TotalPriceCents uint32    `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}
