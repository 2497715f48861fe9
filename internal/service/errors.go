package service

import (
	"errors"
	"fmt"
)

// ValidationError reports a required or malformed field. It is raised at the
// service boundary before any store mutation, so a rejected request never
// leaves partial writes behind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var ErrUsernameTaken = errors.New("username already taken")
