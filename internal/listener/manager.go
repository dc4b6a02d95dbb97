package listener

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
)

const fullMessage = "Dogtown is full right now, try again later.\n"

// SessionRunner serves one connected client until it leaves.
type SessionRunner interface {
	RunSession(ctx context.Context, rw io.ReadWriter) error
}

// ConnectionManager hands accepted connections to a session runner, turning
// clients away once max sessions are active. A max of zero means no limit.
type ConnectionManager struct {
	runner SessionRunner
	max    int64
	active atomic.Int64
}

func NewConnectionManager(runner SessionRunner, max int) *ConnectionManager {
	return &ConnectionManager{
		runner: runner,
		max:    int64(max),
	}
}

// Active returns the number of sessions currently running.
func (m *ConnectionManager) Active() int {
	return int(m.active.Load())
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	n := m.active.Add(1)
	defer m.active.Add(-1)

	if m.max > 0 && n > m.max {
		slog.InfoContext(ctx, "rejecting console session", "active", n-1, "max", m.max)
		if _, err := fmt.Fprint(conn, fullMessage); err != nil {
			slog.DebugContext(ctx, "writing rejection", "error", err)
		}
		return
	}

	slog.InfoContext(ctx, "console session started", "active", n)
	if err := m.runner.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "console session", "error", err)
	}
	slog.InfoContext(ctx, "console session ended")
}
