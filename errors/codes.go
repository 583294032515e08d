package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeConfigMissing indicates required backend settings are absent.
	ErrCodeConfigMissing ErrorCode = "CONFIG_MISSING"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidQuery indicates a query could not be serialized.
	ErrCodeInvalidQuery ErrorCode = "INVALID_QUERY"
)

// Connection/Availability errors (retryable)
const (
	// ErrCodeConnectionFailed indicates a failed connection to the backend.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates the client is rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Backend errors
const (
	// ErrCodeNotFound indicates the requested object was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUnauthorized indicates missing or invalid credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the operation is forbidden for this client.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeSessionExpired indicates the session token is no longer valid.
	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	// ErrCodeBackend indicates an unclassified backend error.
	ErrCodeBackend ErrorCode = "BACKEND_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeRateLimited:      true,
}

// IsRetryableCode reports whether operations failing with the given code
// may be retried.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
