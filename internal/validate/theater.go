package validate

// TheaterInput is the payload accepted by the admin theater create and
// update endpoints.  Capacity and screen count must be positive and the
// status is restricted to the known lifecycle values.
type TheaterInput struct {
	Name           string            `json:"name" validate:"required"`
	Location       string            `json:"location" validate:"required"`
	City           string            `json:"city" validate:"required"`
	State          string            `json:"state"`
	ZipCode        string            `json:"zipCode"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email" validate:"omitempty,email"`
	Capacity       uint32            `json:"capacity" validate:"required,gt=0"`
	Screens        uint32            `json:"screens" validate:"required,gt=0"`
	Features       []string          `json:"features"`
	OperatingHours map[string]string `json:"operatingHours"`
	Image          string            `json:"image"`
	Status         string            `json:"status" validate:"required,oneof=active inactive maintenance"`
}

// LoginInput is the admin login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
