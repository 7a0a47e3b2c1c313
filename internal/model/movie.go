package model

import "time"

// Movie is a catalog entry that showtimes reference.  Records are
// immutable from the booking flow's perspective; only the admin
// endpoints create, update or delete them.  Genres are stored as a
// JSON array column in MySQL and unmarshalled on read.
//
// Fields:
//  ID              – unique, stable string identifier.
//  Title           – display title.
//  Poster          – poster image reference.
//  BackgroundImage – wide background image reference.
//  Genres          – ordered list of genre tags.
//  Duration        – running time in minutes, positive.
//  Language        – audio language.
//  Rating          – numeric rating in [0, 10].
//  Description     – free-text synopsis.
//  ReleaseDate     – release date as YYYY-MM-DD.
//  Studio          – producing studio.
type Movie struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Poster          string    `json:"poster"`
	BackgroundImage string    `json:"backgroundImage"`
	Genres          []string  `json:"genre"`
	Duration        uint32    `json:"duration"`
	Language        string    `json:"language"`
	Rating          float64   `json:"rating"`
	Description     string    `json:"description"`
	ReleaseDate     string    `json:"releaseDate"`
	Studio          string    `json:"studio"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
