package sim

import (
	"fmt"
	"math"

	"github.com/pixil98/go-errors"
)

// ObstacleMargin grows every obstacle footprint when testing walkers against it.
const ObstacleMargin = 1.0

// HairStyle selects the hair model of a walker.
type HairStyle string

const (
	HairLong  HairStyle = "long"
	HairShort HairStyle = "short"
)

// Look holds the cosmetic attributes of a walker.
type Look struct {
	Hair    HairStyle `json:"hair"`
	Sweater bool      `json:"sweater,omitempty"`
}

// WalkerSpec describes a walker at scene start.
type WalkerSpec struct {
	ID     int     `json:"id"`
	Start  Vec2    `json:"start"`
	Speed  float64 `json:"speed"`
	Patrol Bounds  `json:"patrol"`
	Look   Look    `json:"look"`
}

// Validate checks that the walker can patrol at all.
func (s WalkerSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Speed < 0 {
		el.Add(fmt.Errorf("walker %d: speed must not be negative", s.ID))
	}
	if s.Patrol.MinX > s.Patrol.MaxX || s.Patrol.MinZ > s.Patrol.MaxZ {
		el.Add(fmt.Errorf("walker %d: patrol bounds are inverted", s.ID))
	}
	if !s.Patrol.Contains(s.Start) {
		el.Add(fmt.Errorf("walker %d: start %v is outside its patrol bounds", s.ID, s.Start))
	}
	switch s.Look.Hair {
	case HairLong, HairShort:
	default:
		el.Add(fmt.Errorf("walker %d: unknown hair style %q", s.ID, s.Look.Hair))
	}

	return el.Err()
}

// Walker is an autonomous person patrolling a rectangle of the city.
type Walker struct {
	ID        int     `json:"id"`
	Position  Vec2    `json:"position"`
	Direction Vec2    `json:"direction"`
	Speed     float64 `json:"speed"`
	Patrol    Bounds  `json:"patrol"`
	Look      Look    `json:"look"`
}

// NewWalker spawns a walker with a random unit heading.
func NewWalker(spec WalkerSpec, r Rand) Walker {
	dir := Vec2{X: jitter(r, 2), Z: jitter(r, 2)}.Normalize()
	if dir.Len() == 0 {
		dir = Vec2{Z: 1}
	}

	return Walker{
		ID:        spec.ID,
		Position:  spec.Start,
		Direction: dir,
		Speed:     spec.Speed,
		Patrol:    spec.Patrol,
		Look:      spec.Look,
	}
}

// Facing returns the yaw that points the walker's model along its direction.
func (w Walker) Facing() float64 {
	return math.Atan2(w.Direction.X, w.Direction.Z)
}

// StepWalker integrates w over dt seconds.
//
// Leaving the patrol rectangle on an axis inverts the direction on that axis only
// and clamps the position back onto the rectangle. Otherwise the candidate position
// is tested against obstacles in order; the first overlap reverts the whole step and
// inverts both direction components.
func StepWalker(w Walker, dt float64, obstacles []Obstacle) Walker {
	next := w
	candidate := w.Position.Add(w.Direction.Scale(w.Speed * dt))

	bounced := false
	if candidate.X < w.Patrol.MinX || candidate.X > w.Patrol.MaxX {
		next.Direction.X = -next.Direction.X
		candidate.X = Clamp(candidate.X, w.Patrol.MinX, w.Patrol.MaxX)
		bounced = true
	}
	if candidate.Z < w.Patrol.MinZ || candidate.Z > w.Patrol.MaxZ {
		next.Direction.Z = -next.Direction.Z
		candidate.Z = Clamp(candidate.Z, w.Patrol.MinZ, w.Patrol.MaxZ)
		bounced = true
	}

	if bounced {
		// A clamped position must not land inside a footprint either; the bounce
		// already turned the walker, so only the step is dropped.
		if _, hit := FirstOverlap(candidate, obstacles); hit && !overlapsAny(w.Position, obstacles) {
			candidate = w.Position
		}
		next.Position = candidate
		return next
	}

	if _, hit := FirstOverlap(candidate, obstacles); hit {
		next.Direction = next.Direction.Negate()
		return next
	}

	next.Position = candidate
	return next
}

// FirstOverlap returns the index of the first obstacle whose grown footprint contains p.
func FirstOverlap(p Vec2, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if o.Overlaps(p, ObstacleMargin) {
			return i, true
		}
	}
	return -1, false
}

func overlapsAny(p Vec2, obstacles []Obstacle) bool {
	_, hit := FirstOverlap(p, obstacles)
	return hit
}
