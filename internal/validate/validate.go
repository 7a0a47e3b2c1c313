// Package validate defines the schema boundary for administrative
// payloads.  Requests are bound into the typed inputs below and checked
// with go-playground/validator before any store mutation happens, so a
// malformed payload is rejected with field-level reasons and is never
// partially applied.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct validates any tagged input structure and returns a map of
// field name to violated rule, or nil when the input is valid.
func Struct(input any) map[string]string {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
