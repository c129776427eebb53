// Package errors defines the application error taxonomy and its HTTP mapping.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithMessage returns a copy carrying a more specific user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidationFailed is the base for malformed or missing input
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid request data")

	ErrInvalidInput = NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Malformed request body")

	ErrInvalidID = NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid ID")

	ErrMissingCredentials = NewBaseError(http.StatusBadRequest, "MISSING_CREDENTIALS", "Username and password are required")

	// Not found
	ErrNotFound = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found")

	ErrUserNotFound = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")

	ErrPostNotFound = NewBaseError(http.StatusNotFound, "POST_NOT_FOUND", "Post not found")

	ErrProductNotFound = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")

	// Conflicts on unique keys
	ErrConflict = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict")

	ErrUsernameTaken = NewBaseError(http.StatusConflict, "USERNAME_TAKEN", "Username already taken")

	ErrEmailTaken = NewBaseError(http.StatusConflict, "EMAIL_TAKEN", "Email already registered")

	// Authentication
	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")

	// General errors
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// NewValidationError creates a 400 error listing every rejected field
func NewValidationError(message string, fields []FieldError) AppError {
	if message == "" {
		message = ErrValidationFailed.Message()
	}

	return ErrValidationFailed.WithMessage(message).WithDetails(fields)
}

// PersistenceError represents an unexpected store failure, implementing the AppError interface.
// The wrapped cause is available to logs but never sent to clients.
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a persistence-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the store error to errors.Is / errors.As
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "Failed to process request"
}

// Details returns detailed error information
func (e *PersistenceError) Details() any {
	return e.details
}
