package render

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pixil98/dogtown/internal/messaging"
	"github.com/pixil98/dogtown/internal/scene"
	"github.com/pixil98/dogtown/internal/sim"
	"github.com/pixil98/dogtown/internal/view"
)

// NotificationBus is where the window picks up toasts from.
type NotificationBus interface {
	messaging.Subscriber
	WaitReady(ctx context.Context) error
}

// Window is the worker owning the raylib window. It drives the frame clock
// from the display refresh and forwards keyboard input to the world.
type Window struct {
	world *sim.World
	bus   NotificationBus
	rand  sim.Rand

	width   int32
	height  int32
	title   string
	fps     int32
	subject string
	onClose func()

	orbit  view.Orbit
	toasts *view.Toasts
}

func NewWindow(world *sim.World, bus NotificationBus, r sim.Rand, opts ...WindowOpt) *Window {
	w := &Window{
		world:   world,
		bus:     bus,
		rand:    r,
		width:   1280,
		height:  720,
		title:   "Dogtown",
		fps:     60,
		subject: messaging.DefaultSubject,
		orbit:   view.DefaultOrbit(),
		toasts:  view.NewToasts(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *Window) Start(ctx context.Context) error {
	// OpenGL calls must all come from the thread that created the context.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if w.onClose != nil {
		defer w.onClose()
	}

	if w.bus != nil {
		if err := w.bus.WaitReady(ctx); err != nil {
			return nil
		}
		unsub, err := messaging.SubscribeNotifications(w.bus, w.subject, w.toasts.Push)
		if err != nil {
			return fmt.Errorf("subscribing to notifications: %w", err)
		}
		defer unsub()
	}

	defer w.world.ReleaseKeys(windowSource)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w.width, w.height, w.title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(w.fps)

	city := scene.City(w.rand)
	people := make(map[int]scene.Model)
	for _, walker := range w.world.Snapshot().Walkers {
		people[walker.ID] = scene.Person(walker.Look, w.rand)
	}

	slog.InfoContext(ctx, "window opened", "width", w.width, "height", w.height)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		w.handleInput(ctx)

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if err := w.world.Frame(ctx, dt); err != nil {
			return fmt.Errorf("advancing frame: %w", err)
		}

		w.draw(w.world.Snapshot(), city, people)
	}

	slog.InfoContext(ctx, "window closed")
	return nil
}

func (w *Window) draw(state sim.State, city scene.Model, people map[int]scene.Model) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.NewColor(0x87, 0xCE, 0xEB, 0xFF))

	rl.BeginMode3D(w.camera())
	drawModel(city)

	pose := scene.DogPose{Moving: state.Player.Moving, Time: state.AnimTime}
	drawModel(scene.Place(scene.Dog(pose), state.Player.Position, state.Player.Heading))

	for _, walker := range state.Walkers {
		if m, ok := people[walker.ID]; ok {
			drawModel(scene.Place(m, walker.Position, walker.Facing()))
		}
	}

	can := scene.FoodCan()
	for _, p := range state.Props {
		drawModel(scene.Place(can, p.Position, 0))
	}
	rl.EndMode3D()

	drawControls()
	drawToasts(w.toasts.Active())
}

func (w *Window) camera() rl.Camera3D {
	x, y, z := w.orbit.Eye()
	return rl.Camera3D{
		Position:   rl.NewVector3(float32(x), float32(y), float32(z)),
		Target:     rl.NewVector3(float32(w.orbit.Target.X), 0, float32(w.orbit.Target.Z)),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}
