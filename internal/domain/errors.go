package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation error")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrImportFailed      = errors.New("import failed")
	ErrUnexpected        = errors.New("unexpected error")
)

// NotFoundError is returned when a search term matched no record by any strategy.
type NotFoundError struct {
	Term string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon with id, name or no %q not found", e.Term)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError describes a uniqueness violation on a single field.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "pokemon exists in db"
	}
	return fmt.Sprintf("pokemon exists in db {%s:%s}", strconv.Quote(e.Field), strconv.Quote(e.Value))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// UnexpectedError is an opaque internal failure. Message carries the
// low-level detail for logs; callers should not show it to clients.
type UnexpectedError struct {
	Op      string
	Message string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *UnexpectedError) Unwrap() error { return ErrUnexpected }

// ImportFailedError is returned by reseed when the bulk insert hit an error
// other than a duplicate key.
type ImportFailedError struct {
	Failed  int
	Message string
}

func (e *ImportFailedError) Error() string {
	return fmt.Sprintf("import failed: %d record(s) rejected: %s", e.Failed, e.Message)
}

func (e *ImportFailedError) Unwrap() error { return ErrImportFailed }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IsClientError reports whether err was caused by the caller's input and
// can be recovered from by retrying with different input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation)
}
