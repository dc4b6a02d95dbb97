package view

import (
	"math"
	"testing"
	"time"

	"github.com/pixil98/dogtown/internal/sim"
	"github.com/pixil98/go-testutil"
)

func TestDefaultOrbit_Eye(t *testing.T) {
	x, y, z := DefaultOrbit().Eye()

	for _, v := range []float64{x, y, z} {
		if math.Abs(v-15) > 1e-9 {
			t.Fatalf("eye: got (%v, %v, %v), expected (15, 15, 15)", x, y, z)
		}
	}
}

func TestOrbit_Limits(t *testing.T) {
	tests := map[string]struct {
		apply       func(Orbit) Orbit
		expDistance float64
		expPolar    float64
	}{
		"zoom in stops at min distance": {
			apply:       func(o Orbit) Orbit { return o.Zoom(1000) },
			expDistance: MinDistance,
			expPolar:    DefaultOrbit().Polar,
		},
		"zoom out stops at max distance": {
			apply:       func(o Orbit) Orbit { return o.Zoom(-1000) },
			expDistance: MaxDistance,
			expPolar:    DefaultOrbit().Polar,
		},
		"dragging down stops above the ground": {
			apply:       func(o Orbit) Orbit { return o.Drag(0, -100000) },
			expDistance: DefaultOrbit().Distance,
			expPolar:    MaxPolar,
		},
		"dragging up stops short of vertical": {
			apply:       func(o Orbit) Orbit { return o.Drag(0, 100000) },
			expDistance: DefaultOrbit().Distance,
			expPolar:    MinPolar,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := tt.apply(DefaultOrbit())

			testutil.AssertEqual(t, "distance", o.Distance, tt.expDistance)
			testutil.AssertEqual(t, "polar", o.Polar, tt.expPolar)

			_, y, _ := o.Eye()
			if y <= 0 {
				t.Errorf("camera below ground: y=%v", y)
			}
		})
	}
}

func TestOrbit_PanKeepsDistance(t *testing.T) {
	o := DefaultOrbit().Pan(40, -25)

	if o.Target == (sim.Vec2{}) {
		t.Fatalf("pan did not move the target")
	}
	testutil.AssertEqual(t, "distance", o.Distance, DefaultOrbit().Distance)
}

func TestToasts(t *testing.T) {
	now := time.Unix(100, 0)
	toasts := NewToasts(WithMaxToasts(2), WithClock(func() time.Time { return now }))

	toasts.Push(sim.Notification{Kind: sim.NotifyBark, Duration: time.Second})
	toasts.Push(sim.Notification{Kind: sim.NotifySpeech, Duration: 3 * time.Second})
	testutil.AssertEqual(t, "active", len(toasts.Active()), 2)

	toasts.Push(sim.Notification{Kind: sim.NotifyFoodDrop, Duration: 3 * time.Second})
	active := toasts.Active()
	testutil.AssertEqual(t, "capped", len(active), 2)
	testutil.AssertEqual(t, "oldest dropped", active[0].Kind, sim.NotifySpeech)

	now = now.Add(3 * time.Second)
	testutil.AssertEqual(t, "expired", len(toasts.Active()), 0)
}

func TestToasts_ExpiryIsPerToast(t *testing.T) {
	now := time.Unix(0, 0)
	toasts := NewToasts(WithClock(func() time.Time { return now }))

	toasts.Push(sim.Notification{Kind: sim.NotifyBark, Duration: time.Second})
	toasts.Push(sim.Notification{Kind: sim.NotifyFoodEaten, Duration: 2 * time.Second})

	now = now.Add(1500 * time.Millisecond)
	active := toasts.Active()
	testutil.AssertEqual(t, "active", len(active), 1)
	testutil.AssertEqual(t, "kind", active[0].Kind, sim.NotifyFoodEaten)
}
