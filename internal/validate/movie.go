package validate

// MovieInput is the payload accepted by the admin movie create and
// update endpoints.  Duration must be a positive number of minutes and
// the rating stays within the 0-10 scale.
type MovieInput struct {
	Title           string   `json:"title" validate:"required"`
	Poster          string   `json:"poster"`
	BackgroundImage string   `json:"backgroundImage"`
	Genres          []string `json:"genre" validate:"required,min=1,dive,required"`
	Duration        uint32   `json:"duration" validate:"required,gt=0"`
	Language        string   `json:"language" validate:"required"`
	Rating          float64  `json:"rating" validate:"gte=0,lte=10"`
	Description     string   `json:"description"`
	ReleaseDate     string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Studio          string   `json:"studio"`
}
