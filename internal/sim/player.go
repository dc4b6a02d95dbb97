package sim

import "math"

const (
	// PlayerStep is the distance covered per input tick for each held key.
	PlayerStep = 0.15

	// ArenaHalfSize bounds the player to [-ArenaHalfSize, ArenaHalfSize] on both axes.
	ArenaHalfSize = 20.0
)

// Headings the player faces after moving in a cardinal direction.
const (
	HeadingUp    = 0.0
	HeadingDown  = math.Pi
	HeadingLeft  = math.Pi / 2
	HeadingRight = -math.Pi / 2
)

// PlayerStart is where the dog appears when the scene starts.
var PlayerStart = Vec2{X: 0, Z: 8}

// Key identifies a directional key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// Keys is the set of directional keys currently held down.
type Keys struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Set marks k as held or released.
func (k *Keys) Set(key Key, down bool) {
	switch key {
	case KeyUp:
		k.Up = down
	case KeyDown:
		k.Down = down
	case KeyLeft:
		k.Left = down
	case KeyRight:
		k.Right = down
	}
}

// Or merges two key sets; a key is held if either set holds it.
func (k Keys) Or(o Keys) Keys {
	return Keys{
		Up:    k.Up || o.Up,
		Down:  k.Down || o.Down,
		Left:  k.Left || o.Left,
		Right: k.Right || o.Right,
	}
}

// Any reports whether at least one key is held.
func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Player is the keyboard controlled dog.
type Player struct {
	Position Vec2    `json:"position"`
	Heading  float64 `json:"heading"`

	// Moving only drives the tail wag animation.
	Moving bool `json:"moving"`
}

// StepPlayer advances the player by one input tick. Every held key contributes a
// full step, so diagonal movement is faster than cardinal movement. Keys are
// processed up, down, left, right and the last one processed sets the heading.
// The result is clamped to arena.
func StepPlayer(p Player, keys Keys, arena Bounds) Player {
	next := p
	next.Moving = keys.Any()
	if !next.Moving {
		return next
	}

	if keys.Up {
		next.Position.Z -= PlayerStep
		next.Heading = HeadingUp
	}
	if keys.Down {
		next.Position.Z += PlayerStep
		next.Heading = HeadingDown
	}
	if keys.Left {
		next.Position.X -= PlayerStep
		next.Heading = HeadingLeft
	}
	if keys.Right {
		next.Position.X += PlayerStep
		next.Heading = HeadingRight
	}

	next.Position = arena.Clamp(next.Position)
	return next
}
