// Package common defines sentinel errors and small helpers shared by the
// account and announcement stores. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when an account or announcement id is unknown.
	ErrNotFound = errors.New("not found")

	// Account errors.
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrDeactivated     = errors.New("account deactivated")
	ErrBadCredential   = errors.New("bad credential")
	ErrWeakPassword    = errors.New("password too short")
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation = errors.New("validation error")
)

// ValidationError aggregates every violated rule of a single validation run.
// Codes are message keys; they are translated at the result boundary.
type ValidationError struct {
	Codes []string
}

// NewValidationError returns nil when no codes are given.
func NewValidationError(codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	c := make([]string, len(codes))
	copy(c, codes)
	return &ValidationError{Codes: c}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Codes, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
