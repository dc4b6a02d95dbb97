package listener

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/pixil98/go-testutil"
)

// blockingRunner holds every session open until release is closed.
type blockingRunner struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func (r *blockingRunner) RunSession(ctx context.Context, rw io.ReadWriter) error {
	r.started <- struct{}{}
	<-r.release
	_, _ = io.WriteString(rw, "bye\n")
	return r.err
}

func TestConnectionManager_Limit(t *testing.T) {
	r := &blockingRunner{started: make(chan struct{}, 1), release: make(chan struct{})}
	m := NewConnectionManager(r, 1)

	var first bytes.Buffer
	done := make(chan struct{})
	go func() {
		m.AcceptConnection(context.Background(), pipe{Writer: &first})
		close(done)
	}()
	<-r.started
	testutil.AssertEqual(t, "active", m.Active(), 1)

	var second bytes.Buffer
	m.AcceptConnection(context.Background(), pipe{Writer: &second})
	testutil.AssertEqual(t, "rejected", second.String(), fullMessage)
	testutil.AssertEqual(t, "active after rejection", m.Active(), 1)

	close(r.release)
	<-done
	testutil.AssertEqual(t, "first", first.String(), "bye\n")
	testutil.AssertEqual(t, "active at end", m.Active(), 0)
}

func TestConnectionManager_Unlimited(t *testing.T) {
	r := &blockingRunner{started: make(chan struct{}, 3), release: make(chan struct{}), err: errors.New("dropped")}
	close(r.release)
	m := NewConnectionManager(r, 0)

	for i := 0; i < 3; i++ {
		var out bytes.Buffer
		m.AcceptConnection(context.Background(), pipe{Writer: &out})
		testutil.AssertEqual(t, "output", out.String(), "bye\n")
	}
	testutil.AssertEqual(t, "active", m.Active(), 0)
}
