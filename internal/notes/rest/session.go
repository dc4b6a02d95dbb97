package rest

import (
	"context"
	"fmt"

	"github.com/pixil98/dogtown/internal/notes"
)

// NewSession returns a session for u whose sign out revokes the client's
// access token with GoTrue.
func NewSession(c *Client, u notes.User) *notes.StaticSession {
	return notes.NewStaticSession(u, func(ctx context.Context) error {
		ctx, cancel := c.withTimeout(ctx)
		defer cancel()

		if err := c.auth(ctx).Logout(); err != nil {
			return fmt.Errorf("logging out: %w", err)
		}
		return nil
	})
}
