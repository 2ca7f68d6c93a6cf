package foliosdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/folio/pkg/httpx"
)

// APIError is an error response. Handlers write it with WriteError; the
// client returns it for every non-2xx answer.
type APIError struct {
	StatusCode int
	Message    string

	AttemptsRemaining *int
	RetryAfter        *int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("folio: %d %s", e.StatusCode, e.Message)
}

// WriteError writes e as {"success":false,"error":...}. A RetryAfter also
// sets the Retry-After header.
func (e *APIError) WriteError(w http.ResponseWriter) {
	if e.RetryAfter != nil {
		w.Header().Set("Retry-After", strconv.Itoa(*e.RetryAfter))
	}
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Success:           false,
		Error:             e.Message,
		AttemptsRemaining: e.AttemptsRemaining,
		RetryAfter:        e.RetryAfter,
	})
}

// NewAPIError builds an APIError with a client-safe message.
func NewAPIError(status int, msg string) *APIError {
	return &APIError{StatusCode: status, Message: msg}
}

var (
	ErrBadRequest       = NewAPIError(http.StatusBadRequest, "Invalid request body")
	ErrNotAuthenticated = NewAPIError(http.StatusUnauthorized, "Not authenticated")
	ErrInvalidSession   = NewAPIError(http.StatusUnauthorized, "Invalid or expired session")
	ErrForbidden        = NewAPIError(http.StatusForbidden, "Forbidden")
	ErrNotFound         = NewAPIError(http.StatusNotFound, "Not found")
	ErrServerError      = NewAPIError(http.StatusInternalServerError, "Internal server error")
)

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// parseErrorResponse converts a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:        resp.StatusCode,
			Message:           errResp.Error,
			AttemptsRemaining: errResp.AttemptsRemaining,
			RetryAfter:        errResp.RetryAfter,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
