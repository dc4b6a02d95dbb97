package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/dogtown/internal/notes"
)

// SessionConfig is the identity the client acts as.
type SessionConfig struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (s *SessionConfig) Validate() error {
	el := errors.NewErrorList()

	if s.UserID == "" {
		el.Add(fmt.Errorf("session.user_id is required"))
	}

	return el.Err()
}

func (s *SessionConfig) user() notes.User {
	return notes.User{ID: s.UserID, Email: s.Email}
}
