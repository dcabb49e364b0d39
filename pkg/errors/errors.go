package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "validation"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeConflict        ErrorType = "conflict"
	ErrorTypeUnauthenticated ErrorType = "unauthenticated"
	ErrorTypeForbidden       ErrorType = "forbidden"
	ErrorTypeInternal        ErrorType = "internal"
)

// APIError represents a structured API error
type APIError struct {
	Type        ErrorType
	Message     string
	HTTPStatus  int
	InternalErr error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.InternalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.InternalErr)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.InternalErr
}

// NewAPIError creates a new API error
func NewAPIError(errorType ErrorType, message string, httpStatus int) *APIError {
	return &APIError{
		Type:       errorType,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// ValidationError creates a validation error (missing or malformed fields)
func ValidationError(message string) *APIError {
	return NewAPIError(ErrorTypeValidation, message, http.StatusBadRequest)
}

// ConflictError creates a conflict error (uniqueness violations)
func ConflictError(message string) *APIError {
	return NewAPIError(ErrorTypeConflict, message, http.StatusBadRequest)
}

// NotFoundError creates a not-found error
func NotFoundError(message string) *APIError {
	return NewAPIError(ErrorTypeNotFound, message, http.StatusNotFound)
}

// ForbiddenError creates a forbidden error
func ForbiddenError(message string) *APIError {
	return NewAPIError(ErrorTypeForbidden, message, http.StatusForbidden)
}

// UnauthenticatedError creates an unauthenticated error
func UnauthenticatedError(message string) *APIError {
	return NewAPIError(ErrorTypeUnauthenticated, message, http.StatusUnauthorized)
}

// InternalError wraps an unexpected failure. The cause is kept for logging
// and never serialized to the caller.
func InternalError(message string, cause error) *APIError {
	return &APIError{
		Type:        ErrorTypeInternal,
		Message:     message,
		HTTPStatus:  http.StatusInternalServerError,
		InternalErr: cause,
	}
}

// AsAPIError extracts an *APIError from an error chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HTTPStatusFor maps an error to the HTTP status it should surface as.
// Anything that is not an APIError is an unexpected failure.
func HTTPStatusFor(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsType reports whether err is an APIError of the given type
func IsType(err error, errorType ErrorType) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Type == errorType
}
