// Package validator adapts the shared struct validator to echo.
package validator

import (
	"mimapa/internal/validation"
)

// Validator implements echo.Validator.
type Validator struct{}

// New returns the echo validator.
func New() *Validator {
	return &Validator{}
}

// Validate reports failures as *domainerrors.ValidationError.
func (v *Validator) Validate(i any) error {
	return validation.Struct(i)
}
