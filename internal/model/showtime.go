package model

// Showtime is a scheduled screening of a movie at a theater.  Many
// showtimes may exist per (movie, theater) pair and no overlap checking
// is performed.  Date is YYYY-MM-DD, Time is a display string such as
// "7:30 PM".  PriceCents is the base ticket price; individual seats
// carry their own price in the seat inventory.
type Showtime struct {
	ID         string `json:"id"`
	MovieID    string `json:"movieId"`
	TheaterID  string `json:"theaterId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	PriceCents uint32 `json:"price"`
}
