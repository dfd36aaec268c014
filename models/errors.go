package models

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already exists")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrExternalUnavailable = errors.New("external service unavailable")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// UpstreamError carries an error status the external service answered with.
// The HTTP boundary propagates the status unchanged.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("external service returned status %d", e.Status)
}
