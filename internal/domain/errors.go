package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Cycle and sharing rule violations.
var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrOverlap          = fmt.Errorf("period overlaps an existing record: %w", ErrConflict)
	ErrDuplicateGrant   = fmt.Errorf("sharing grant already exists: %w", ErrConflict)
	ErrSelfShare        = fmt.Errorf("cannot share with yourself: %w", ErrConflict)
	ErrInvalidToken     = errors.New("invalid or revoked share token")
	ErrTargetNotFound   = fmt.Errorf("target user: %w", ErrNotFound)
	ErrInvalidInput     = fmt.Errorf("invalid input: %w", ErrValidation)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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
