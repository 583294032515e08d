package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the unified parsekit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the HTTP status associated with this error, when known.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// AsAppError extracts an *AppError from err's chain, if present.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// --- Common Error Constructors ---

// MissingSettings creates a new AppError for absent backend settings.
func MissingSettings(backend string) *AppError {
	return &AppError{
		Code: ErrCodeConfigMissing, Message: fmt.Sprintf("No settings configured for the %s backend.", backend),
		Retryable: false,
		Details:   map[string]any{"backend": backend},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// InvalidQuery creates a new AppError for a query that could not be serialized.
func InvalidQuery(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidQuery, Message: "The query could not be serialized.",
		HTTPStatus: http.StatusBadRequest, Retryable: false, Cause: cause,
	}
}

// ConnectionFailed creates a new AppError for a failed connection to the backend.
func ConnectionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: "Unable to connect to the backend.",
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true, Cause: cause,
	}
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The request took too long.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true, Cause: cause,
	}
}

// NotFound creates a new AppError for an object that was not found.
func NotFound(class, id string) *AppError {
	details := map[string]any{"class": class}
	if id != "" {
		details["objectId"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s object was not found.", class),
		HTTPStatus: http.StatusNotFound, Retryable: false, Details: details,
	}
}

// Unauthorized creates a new AppError for missing or invalid credentials.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Invalid application credentials."
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: reason,
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
	}
}
