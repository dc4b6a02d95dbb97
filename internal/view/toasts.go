package view

import (
	"sync"
	"time"

	"github.com/pixil98/dogtown/internal/sim"
)

const DefaultMaxToasts = 3

// Toast is a notification with the time it disappears.
type Toast struct {
	sim.Notification
	Expires time.Time
}

// Toasts holds the notifications currently on screen. Publishing happens on the
// bus goroutine while drawing happens on the window thread.
type Toasts struct {
	mu    sync.Mutex
	items []Toast
	max   int
	now   func() time.Time
}

func NewToasts(opts ...ToastsOpt) *Toasts {
	t := &Toasts{
		max: DefaultMaxToasts,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type ToastsOpt func(*Toasts)

// WithMaxToasts limits how many toasts are shown at once; the oldest go first.
func WithMaxToasts(n int) ToastsOpt {
	return func(t *Toasts) {
		t.max = n
	}
}

func WithClock(now func() time.Time) ToastsOpt {
	return func(t *Toasts) {
		t.now = now
	}
}

func (t *Toasts) Push(n sim.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, Toast{Notification: n, Expires: t.now().Add(n.Duration)})
	if t.max > 0 && len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
}

// Active drops expired toasts and returns the rest, oldest first.
func (t *Toasts) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.Expires) {
			kept = append(kept, item)
		}
	}
	t.items = kept

	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}
