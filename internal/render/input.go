package render

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pixil98/dogtown/internal/sim"
)

var moveKeys = map[int32]sim.Key{
	rl.KeyUp:    sim.KeyUp,
	rl.KeyDown:  sim.KeyDown,
	rl.KeyLeft:  sim.KeyLeft,
	rl.KeyRight: sim.KeyRight,
}

// windowSource is the key source for the window's keyboard.
const windowSource = "window"

// handleInput forwards movement key edges, fires one action per V or Y press
// and moves the camera. Only edges are sent so keys held by other sources are
// left alone.
func (w *Window) handleInput(ctx context.Context) {
	for rk, k := range moveKeys {
		if rl.IsKeyPressed(rk) {
			w.world.SetKey(windowSource, k, true)
		}
		if rl.IsKeyReleased(rk) {
			w.world.SetKey(windowSource, k, false)
		}
	}

	if rl.IsKeyPressed(rl.KeyV) {
		w.world.Bark(ctx)
	}
	if rl.IsKeyPressed(rl.KeyY) {
		w.world.Eat(ctx)
	}

	delta := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		w.orbit = w.orbit.Drag(float64(delta.X), float64(delta.Y))
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		w.orbit = w.orbit.Pan(float64(delta.X), float64(delta.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.orbit = w.orbit.Zoom(float64(wheel))
	}
}
