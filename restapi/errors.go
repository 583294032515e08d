package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kbukum/parsekit/errors"
)

// errorEnvelope is the backend error body, {"code":101,"error":"object not found"}.
type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

// classifyResponse converts an error response into an AppError. A decodable
// backend envelope wins; otherwise the HTTP status decides.
func classifyResponse(status int, body []byte) error {
	if len(body) > 0 {
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err == nil && env.Code != 0 {
			return errors.FromParseCode(env.Code, env.Message, status)
		}
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Unauthorized("")
	case http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "The requested object was not found.", status)
	case http.StatusTooManyRequests:
		return errors.New(errors.ErrCodeRateLimited, "Too many requests.", status)
	default:
		return errors.New(errors.ErrCodeBackend, fmt.Sprintf("The backend returned status %d.", status), status)
	}
}
