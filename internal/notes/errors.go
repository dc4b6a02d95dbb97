package notes

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("note not found")
	ErrNotSignedIn = errors.New("not signed in")
)

// APIError is a failed response from a hosted backend.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// userMessage picks the text shown to the user for a failed operation. Backend
// messages are shown as is; anything else gets the fallback.
func userMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
