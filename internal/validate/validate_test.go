package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMovie() MovieInput {
	return MovieInput{
		Title:       "Inception",
		Genres:      []string{"Action", "Sci-Fi"},
		Duration:    148,
		Language:    "English",
		Rating:      8.8,
		ReleaseDate: "2010-07-16",
		Studio:      "Warner Bros.",
	}
}

func TestMovieInput(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*MovieInput)
		badField string
	}{
		{name: "valid", mutate: func(*MovieInput) {}},
		{name: "missing title", mutate: func(m *MovieInput) { m.Title = "" }, badField: "Title"},
		{name: "zero duration", mutate: func(m *MovieInput) { m.Duration = 0 }, badField: "Duration"},
		{name: "rating above scale", mutate: func(m *MovieInput) { m.Rating = 10.5 }, badField: "Rating"},
		{name: "no genres", mutate: func(m *MovieInput) { m.Genres = nil }, badField: "Genres"},
		{name: "bad release date", mutate: func(m *MovieInput) { m.ReleaseDate = "16/07/2010" }, badField: "ReleaseDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validMovie()
			tt.mutate(&in)
			fields := Struct(in)
			if tt.badField == "" {
				assert.Nil(t, fields)
			} else {
				assert.Contains(t, fields, tt.badField)
			}
		})
	}
}

func TestTheaterInput(t *testing.T) {
	in := TheaterInput{
		Name:     "Cineplex Downtown",
		Location: "123 Main Street",
		City:     "New York",
		Capacity: 250,
		Screens:  8,
		Status:   "active",
	}
	assert.Nil(t, Struct(in))

	in.Status = "closed"
	fields := Struct(in)
	assert.Contains(t, fields, "Status")

	in.Status = "maintenance"
	in.Email = "not-an-email"
	fields = Struct(in)
	assert.Contains(t, fields, "Email")

	in.Email = "downtown@cineplex.com"
	in.Capacity = 0
	fields = Struct(in)
	assert.Contains(t, fields, "Capacity")
}
