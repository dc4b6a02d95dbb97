package notes

import (
	"context"
	"time"
)

// Store is the record backend. Implementations return ErrNotFound for ids that
// do not exist when they can tell.
type Store interface {
	List(ctx context.Context, ownerID string) ([]Note, error)
	Insert(ctx context.Context, ownerID string, d Draft) error
	Update(ctx context.Context, id string, d Draft, at time.Time) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	Delete(ctx context.Context, id string) error
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
