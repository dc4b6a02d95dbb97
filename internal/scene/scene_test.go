package scene

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/pixil98/dogtown/internal/sim"
	"github.com/pixil98/go-testutil"
)

// countingRand returns v on every call and counts the calls.
type countingRand struct {
	v     float64
	calls int
}

func (r *countingRand) Float64() float64 {
	r.calls++
	return r.v
}

func TestDogPose(t *testing.T) {
	tests := map[string]struct {
		pose    DogPose
		expTail float64
		expEar  float64
	}{
		"resting tail": {
			pose:    DogPose{Moving: false, Time: 3 * time.Second},
			expTail: 0.3,
			expEar:  0.55 + math.Sin(18)*0.1,
		},
		"wag starts at rest angle": {
			pose:    DogPose{Moving: true},
			expTail: 0.3,
			expEar:  0.55,
		},
		"wag peaks": {
			pose:    DogPose{Moving: true, Time: time.Duration(math.Round(math.Pi / 16 * float64(time.Second)))},
			expTail: 0.8,
			expEar:  0.55 + math.Sin(6*math.Pi/16)*0.1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if math.Abs(tt.pose.TailAngle()-tt.expTail) > 1e-6 {
				t.Errorf("tail: got %v, expected %v", tt.pose.TailAngle(), tt.expTail)
			}
			if math.Abs(tt.pose.EarHeight()-tt.expEar) > 1e-6 {
				t.Errorf("ear: got %v, expected %v", tt.pose.EarHeight(), tt.expEar)
			}
		})
	}
}

func TestDog(t *testing.T) {
	m := Dog(DogPose{})

	testutil.AssertEqual(t, "parts", m.Count(), 15)
	_, ok := child(m, "left-eye")
	testutil.AssertEqual(t, "left eye", ok, true)
}

func TestPerson(t *testing.T) {
	tests := map[string]struct {
		look     sim.Look
		roll     float64
		expShirt int
		expParts int
		expRed   bool
	}{
		"short hair first shirt": {
			look:     sim.Look{Hair: sim.HairShort},
			roll:     0,
			expShirt: 0,
			expParts: 13,
		},
		"long hair last shirt": {
			look:     sim.Look{Hair: sim.HairLong},
			roll:     0.99,
			expShirt: len(ShirtColors) - 1,
			expParts: 15,
		},
		"sweater overrides the shirt": {
			look:     sim.Look{Hair: sim.HairLong, Sweater: true},
			roll:     0.5,
			expParts: 18,
			expRed:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := &countingRand{v: tt.roll}
			m := Person(tt.look, r)

			testutil.AssertEqual(t, "rand calls", r.calls, 1)
			testutil.AssertEqual(t, "parts", m.Count(), tt.expParts)
			testutil.AssertEqual(t, "scale", m.ScaleOr(), float32(PersonScale))

			body := m.Parts[0].Color
			if tt.expRed {
				testutil.AssertEqual(t, "body", body, sweaterRed)
				return
			}
			testutil.AssertEqual(t, "body", body, ShirtColors[tt.expShirt])
		})
	}
}

func TestFoodCan(t *testing.T) {
	m := FoodCan()
	testutil.AssertEqual(t, "parts", m.Count(), 2)
	testutil.AssertEqual(t, "scale", m.ScaleOr(), float32(1))
}

func TestPlace(t *testing.T) {
	m := Place(FoodCan(), sim.Vec2{X: 2, Z: -3}, math.Pi)

	testutil.AssertEqual(t, "position", m.Position, Vec3{X: 2, Z: -3})
	testutil.AssertEqual(t, "yaw", m.Yaw, float32(math.Pi))
}

func TestCity(t *testing.T) {
	r := &countingRand{v: 0.5}
	city := City(r)

	testutil.AssertEqual(t, "rand calls", r.calls, 5*5+6*2+4*2)

	grocery, ok := child(city, "grocery")
	testutil.AssertEqual(t, "grocery", ok, true)

	cucumbers, ok := child(grocery, "cucumbers")
	testutil.AssertEqual(t, "cucumber crate", ok, true)
	testutil.AssertEqual(t, "cucumber parts", cucumbers.Count(), 6)

	for _, name := range []string{"apartments", "townhouse", "tower", "park", "traffic-light", "cafe"} {
		if _, ok := child(city, name); !ok {
			t.Errorf("missing %s", name)
		}
	}
}

func TestCity_SeededProduceIsReproducible(t *testing.T) {
	a := City(sim.NewRand(7))
	b := City(sim.NewRand(7))
	c := City(sim.NewRand(8))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed built different cities")
	}
	if reflect.DeepEqual(a, c) {
		t.Errorf("different seeds built identical cities")
	}
}

func TestFootprints(t *testing.T) {
	fps := Footprints()
	testutil.AssertEqual(t, "count", len(fps), 5)

	for _, spec := range sim.DefaultWalkers() {
		if i, hit := sim.FirstOverlap(spec.Start, fps); hit {
			t.Errorf("walker %d starts inside %s", spec.ID, fps[i].Name)
		}
	}

	r := sim.NewRand(3)
	for _, spec := range sim.DefaultWalkers() {
		w := sim.NewWalker(spec, r)
		for i := 0; i < 5000; i++ {
			w = sim.StepWalker(w, 1.0/60, fps)
			if idx, hit := sim.FirstOverlap(w.Position, fps); hit {
				t.Fatalf("walker %d tick %d inside %s", w.ID, i, fps[idx].Name)
			}
		}
	}
}

func child(m Model, name string) (Model, bool) {
	for _, c := range m.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Model{}, false
}
