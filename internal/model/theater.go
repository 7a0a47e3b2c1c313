package model

import "time"

// Theater statuses as stored in the theaters.status column.
const (
	TheaterStatusActive      = "active"
	TheaterStatusInactive    = "inactive"
	TheaterStatusMaintenance = "maintenance"
)

// Theater is a venue that hosts showtimes.  Features and OperatingHours
// are persisted as JSON columns; OperatingHours maps a weekday name to
// an opening-hours string such as "10:00 AM - 11:00 PM".
//
// Fields:
//  ID             – unique, stable string identifier.
//  Name           – display name.
//  Location       – street address line.
//  City, State    – address fields.
//  ZipCode        – postal code.
//  Phone, Email   – contact fields.
//  Capacity       – total seats across screens, positive.
//  Screens        – screen count, positive.
//  Features       – feature tags such as IMAX or Dolby Atmos.
//  OperatingHours – weekday name -> hours string.
//  Image          – image reference.
//  Status         – one of the TheaterStatus* constants.
type Theater struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	ZipCode        string            `json:"zipCode"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Capacity       uint32            `json:"capacity"`
	Screens        uint32            `json:"screens"`
	Features       []string          `json:"features"`
	OperatingHours map[string]string `json:"operatingHours"`
	Image          string            `json:"image"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"-"`
	UpdatedAt      time.Time         `json:"-"`
}
