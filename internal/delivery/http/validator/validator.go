// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	validatorLib "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for Echo.
type Validator struct {
	validate *validatorLib.Validate
}

// New creates the Echo request validator.
func New() *Validator {
	return &Validator{
		validate: validatorLib.New(validatorLib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
