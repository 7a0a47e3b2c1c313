// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is confirmed. It carries
// enough denormalized context for downstream consumers to log or notify
// without querying the primary database.
type BookingConfirmedEvent struct {
	Code            string   `json:"code"`
	MovieID         string   `json:"movie_id"`
	MovieTitle      string   `json:"movie_title"`
	TheaterID       string   `json:"theater_id"`
	TheaterName     string   `json:"theater_name"`
	ShowtimeID      string   `json:"showtime_id"`
	ShowDate        string   `json:"show_date"`
	ShowTime        string   `json:"show_time"`
	SeatLabels      []string `json:"seats"`
	TotalPriceCents uint32   `json:"total_price_cents"`
	ConfirmedAt     string   `json:"confirmed_at"`
}
