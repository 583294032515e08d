package errors

import "fmt"

// Parse numeric error codes returned in the backend error envelope
// {"code": <n>, "error": "<message>"}. Only the codes this client can
// meaningfully act on are mapped; everything else becomes ErrCodeBackend.
const (
	ParseConnectionFailed     = 100
	ParseObjectNotFound       = 101
	ParseInvalidQuery         = 102
	ParseInvalidClassName     = 103
	ParseOperationForbidden   = 119
	ParseTimeout              = 124
	ParseRequestLimitExceeded = 155
	ParseInvalidSessionToken  = 209
)

var parseCodeMap = map[int]ErrorCode{
	ParseConnectionFailed:     ErrCodeConnectionFailed,
	ParseObjectNotFound:       ErrCodeNotFound,
	ParseInvalidQuery:         ErrCodeInvalidQuery,
	ParseInvalidClassName:     ErrCodeInvalidInput,
	ParseOperationForbidden:   ErrCodeForbidden,
	ParseTimeout:              ErrCodeTimeout,
	ParseRequestLimitExceeded: ErrCodeRateLimited,
	ParseInvalidSessionToken:  ErrCodeSessionExpired,
}

// FromParseCode converts a backend error envelope into an AppError.
// httpStatus is the HTTP status of the response carrying the envelope.
func FromParseCode(code int, message string, httpStatus int) *AppError {
	mapped, ok := parseCodeMap[code]
	if !ok {
		mapped = ErrCodeBackend
	}
	if message == "" {
		message = fmt.Sprintf("The backend returned error code %d.", code)
	}
	err := New(mapped, message, httpStatus)
	return err.WithDetail("parse_code", code)
}
