// Package repository contains the data access layer, separated from
// HTTP handlers.  Sentinel errors defined here and next to each repo
// let higher layers translate failures into distinct HTTP outcomes
// instead of leaking database errors: not-found maps to 404, conflicts
// to 409, and unavailable seats to a structured rejection payload.
package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is returned when a mutation cannot proceed because of
// conflicting state, such as creating a record whose id already exists.
// Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// SeatsUnavailableError reports the seats that could not be booked
// because their inventory status changed since they were selected.
// Confirmation is all-or-nothing: when any seat fails the conditional
// write, nothing is booked and the whole failing set is reported.
type SeatsUnavailableError struct {
	SeatIDs []string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seats unavailable: %s", strings.Join(e.SeatIDs, ", "))
}
