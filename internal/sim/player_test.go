package sim

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestStepPlayer(t *testing.T) {
	start := Player{Position: Vec2{X: 0, Z: 0}, Heading: HeadingDown}
	arena := Square(ArenaHalfSize)

	tests := map[string]struct {
		start      Player
		keys       Keys
		expPos     Vec2
		expHeading float64
		expMoving  bool
	}{
		"no keys leaves player in place": {
			start:      start,
			expPos:     Vec2{X: 0, Z: 0},
			expHeading: HeadingDown,
			expMoving:  false,
		},
		"up moves toward negative z": {
			start:      start,
			keys:       Keys{Up: true},
			expPos:     Vec2{X: 0, Z: -PlayerStep},
			expHeading: HeadingUp,
			expMoving:  true,
		},
		"left moves toward negative x": {
			start:      start,
			keys:       Keys{Left: true},
			expPos:     Vec2{X: -PlayerStep, Z: 0},
			expHeading: HeadingLeft,
			expMoving:  true,
		},
		"diagonal compounds without normalization": {
			start:      start,
			keys:       Keys{Down: true, Right: true},
			expPos:     Vec2{X: PlayerStep, Z: PlayerStep},
			expHeading: HeadingRight,
			expMoving:  true,
		},
		"opposite keys cancel but last key sets heading": {
			start:      start,
			keys:       Keys{Up: true, Down: true, Left: true, Right: true},
			expPos:     Vec2{X: 0, Z: 0},
			expHeading: HeadingRight,
			expMoving:  true,
		},
		"up then down faces down": {
			start:      start,
			keys:       Keys{Up: true, Down: true},
			expPos:     Vec2{X: 0, Z: 0},
			expHeading: HeadingDown,
			expMoving:  true,
		},
		"clamped at the arena edge": {
			start:      Player{Position: Vec2{X: ArenaHalfSize, Z: -ArenaHalfSize}},
			keys:       Keys{Up: true, Right: true},
			expPos:     Vec2{X: ArenaHalfSize, Z: -ArenaHalfSize},
			expHeading: HeadingRight,
			expMoving:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := StepPlayer(tt.start, tt.keys, arena)

			if !approx(got.Position.X, tt.expPos.X) || !approx(got.Position.Z, tt.expPos.Z) {
				t.Errorf("position: got %v, expected %v", got.Position, tt.expPos)
			}
			testutil.AssertEqual(t, "heading", got.Heading, tt.expHeading)
			testutil.AssertEqual(t, "moving", got.Moving, tt.expMoving)
		})
	}
}

func TestStepPlayer_StaysInArena(t *testing.T) {
	arena := Square(ArenaHalfSize)

	tests := map[string]Keys{
		"up left":    {Up: true, Left: true},
		"down right": {Down: true, Right: true},
		"up":         {Up: true},
		"right":      {Right: true},
	}

	for name, keys := range tests {
		t.Run(name, func(t *testing.T) {
			p := Player{Position: PlayerStart}
			for i := 0; i < 10000; i++ {
				p = StepPlayer(p, keys, arena)
				if !arena.Contains(p.Position) {
					t.Fatalf("tick %d: position %v left the arena", i, p.Position)
				}
			}
		})
	}
}

func TestKeys_Set(t *testing.T) {
	var k Keys
	k.Set(KeyLeft, true)
	k.Set(KeyUp, true)
	k.Set(KeyUp, false)

	testutil.AssertEqual(t, "keys", k, Keys{Left: true})
	testutil.AssertEqual(t, "any", k.Any(), true)
}
