package sim

import (
	"context"
	"math"
	"slices"
	"sync"
	"testing"
)

// seqRand replays vals in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []Notification
}

func (p *recordingPublisher) Publish(_ context.Context, n Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, n)
	return nil
}

func (p *recordingPublisher) kinds() []NotificationKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]NotificationKind, 0, len(p.sent))
	for _, n := range p.sent {
		out = append(out, n.Kind)
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertKinds(t *testing.T, got, exp []NotificationKind) {
	t.Helper()
	if !slices.Equal(got, exp) {
		t.Errorf("kinds: got %v, expected %v", got, exp)
	}
}

func withPlayer(p Player) WorldOpt {
	return func(w *World, _ *worldConfig) {
		w.player = p
	}
}

func withProps(props []Prop) WorldOpt {
	return func(w *World, _ *worldConfig) {
		w.props = props
		for _, p := range props {
			if p.ID >= w.nextProp {
				w.nextProp = p.ID + 1
			}
		}
	}
}
