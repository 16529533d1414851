package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator for the API request types.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
