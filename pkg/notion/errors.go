package notion

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("notion: object not found")
	ErrUnauthorized = errors.New("notion: invalid or missing integration token")
	ErrRateLimited  = errors.New("notion: rate limited")
	ErrServer       = errors.New("notion: server error")
)

// APIError is returned for non-2xx responses that do not map to one of the
// sentinel errors above, carrying the store's own error code and message.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.Status, e.Message)
}

func newAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr.Message = string(body)
	}
	return apiErr
}
