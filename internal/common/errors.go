// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Ledger errors.
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Storage errors.
	ErrStorageRead          = errors.New("storage read failed")
	ErrStorageWrite         = errors.New("storage write failed")
	ErrStorageQuotaExceeded = errors.New("storage quota exceeded")
	ErrMalformedData        = errors.New("malformed persisted data")

	// Backup errors.
	ErrImportValidation = errors.New("import document rejected")

	// Setup errors.
	ErrSetupRequired = errors.New("initial setup not completed")
)

// ValidationError reports which field failed validation. It unwraps to
// ErrInvalidInput so callers can match on the kind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalidf creates a ValidationError for the named field.
func Invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundf wraps ErrNotFound with the entity kind and id.
func NotFoundf(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}
