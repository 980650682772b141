package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the flight record engine.
var (
	// ErrFlightNotFound indicates the requested flight does not exist.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrNotFlightOwner indicates the acting user holds no seat on the
	// flight they attempted to modify.
	ErrNotFlightOwner = errors.New("user holds no seat on this flight")
)

// FieldError is a validation failure scoped to a specific input field.
// Path identifies the offending input (e.g., "legs[2].arrivalTime") so the
// caller can surface the message next to the right form field.
type FieldError struct {
	// Path is the JSON-path-like location of the invalid input
	Path string `json:"path"`

	// Message is the user-correctable description of the problem
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// NewFieldError creates a field-scoped validation error.
func NewFieldError(path, message string) *FieldError {
	return &FieldError{Path: path, Message: message}
}

// LegFieldError creates a field error scoped to a field of the leg at the
// given position, producing paths like "legs[2].arrivalTime".
func LegFieldError(index int, field, message string) *FieldError {
	return &FieldError{
		Path:    fmt.Sprintf("legs[%d].%s", index, field),
		Message: message,
	}
}

// AsFieldError unwraps err into a *FieldError if it is one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// OperationError is a non-validation failure of a store or engine operation.
// It carries the HTTP status the boundary should map it to.
type OperationError struct {
	// Message is a generic description safe to return to the caller
	Message string `json:"message"`

	// Status is the equivalent HTTP status code
	Status int `json:"status"`

	// Err is the underlying cause, kept for logging, never serialized
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps a persistence failure as a generic operation error.
func NewStoreError(err error) *OperationError {
	return &OperationError{
		Message: "persistence operation failed",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AsOperationError unwraps err into an *OperationError if it is one.
func AsOperationError(err error) (*OperationError, bool) {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}
