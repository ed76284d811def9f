package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeCatalogUnavailable indicates the store catalog could not
	// be fetched
	ErrorTypeCatalogUnavailable ErrorType = "CATALOG_UNAVAILABLE"

	// ErrorTypeBackendUnavailable indicates the AI backend could not be
	// reached or no credential is configured
	ErrorTypeBackendUnavailable ErrorType = "BACKEND_UNAVAILABLE"

	// ErrorTypeMalformedResponse indicates the AI backend returned a
	// payload that is not parseable JSON
	ErrorTypeMalformedResponse ErrorType = "MALFORMED_RESPONSE"

	// ErrorTypeSchemaViolation indicates the AI backend returned JSON of
	// the wrong shape
	ErrorTypeSchemaViolation ErrorType = "SCHEMA_VIOLATION"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewCatalogUnavailableError wraps a failed catalog fetch
func NewCatalogUnavailableError(err error) *AppError {
	return &AppError{
		Type:    ErrorTypeCatalogUnavailable,
		Message: "store catalog is unavailable",
		Err:     err,
	}
}

// NewBackendUnavailableError wraps an unreachable AI backend
func NewBackendUnavailableError(err error) *AppError {
	return &AppError{
		Type:    ErrorTypeBackendUnavailable,
		Message: "AI backend is unavailable",
		Err:     err,
	}
}

// NewMalformedResponseError wraps an unparseable AI payload
func NewMalformedResponseError(err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedResponse,
		Message: "AI backend returned a malformed response",
		Err:     err,
	}
}

// NewSchemaViolationError wraps a parseable payload of the wrong shape
func NewSchemaViolationError(err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSchemaViolation,
		Message: "AI backend response did not match the expected schema",
		Err:     err,
	}
}
