package model

import "errors"

// Common errors used across the application
var (
	// Record errors
	ErrRecordNotFound = errors.New("record not found")

	// Credential errors
	ErrUserExists = errors.New("username already exists")
)

// ValidationError reports a required field that is missing or empty after
// trimming, or a date field that does not parse. The store is left unchanged
// when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid field: " + e.Field
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
