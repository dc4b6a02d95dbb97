package sim

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Notification display times.
const (
	SpeechDuration = 3 * time.Second
	BarkDuration   = 1500 * time.Millisecond
	EatDuration    = 2 * time.Second
)

// World is the single source of truth for every actor and prop in the scene.
// The input clock and the frame clock both mutate it, so all access goes through
// its methods.
type World struct {
	mu sync.RWMutex

	arena     Bounds
	player    Player
	keys      map[string]Keys
	walkers   []Walker
	obstacles []Obstacle
	props     []Prop
	nextProp  int
	animTime  time.Duration

	rand      Rand
	publisher Publisher
}

// State is a copy of the world handed to renderers.
type State struct {
	Player    Player        `json:"player"`
	Walkers   []Walker      `json:"walkers"`
	Props     []Prop        `json:"props"`
	Obstacles []Obstacle    `json:"obstacles"`
	AnimTime  time.Duration `json:"anim_time"`
}

// NewWorld builds the scene with the default city unless options override it.
func NewWorld(pub Publisher, r Rand, opts ...WorldOpt) *World {
	w := &World{
		arena:     Square(ArenaHalfSize),
		player:    Player{Position: PlayerStart},
		obstacles: DefaultObstacles(),
		keys:      make(map[string]Keys),
		rand:      r,
		publisher: pub,
	}

	cfg := &worldConfig{walkers: DefaultWalkers()}
	for _, opt := range opts {
		opt(w, cfg)
	}

	w.walkers = make([]Walker, 0, len(cfg.walkers))
	for _, spec := range cfg.walkers {
		w.walkers = append(w.walkers, NewWalker(spec, r))
	}

	return w
}

// SetKey records a directional key press or release from one input source,
// such as the window or a console session. Sources never release each other's
// keys. The next input tick picks it up.
func (w *World) SetKey(source string, k Key, down bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	keys := w.keys[source]
	keys.Set(k, down)
	if !keys.Any() {
		delete(w.keys, source)
		return
	}
	w.keys[source] = keys
}

// ReleaseKeys lets go of every key held by source.
func (w *World) ReleaseKeys(source string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.keys, source)
}

// HeldKeys is the union of the keys every source holds.
func (w *World) HeldKeys() Keys {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.heldKeys()
}

func (w *World) heldKeys() Keys {
	var held Keys
	for _, k := range w.keys {
		held = held.Or(k)
	}
	return held
}

// Input is the fixed rate task moving the player from the held keys.
func (w *World) Input(_ context.Context, _ time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.player = StepPlayer(w.player, w.heldKeys(), w.arena)
	return nil
}

// Frame is the per frame task moving the walkers and advancing animation time.
func (w *World) Frame(_ context.Context, dt time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	secs := dt.Seconds()
	for i := range w.walkers {
		w.walkers[i] = StepWalker(w.walkers[i], secs, w.obstacles)
	}
	w.animTime += dt
	return nil
}

// Bark lets a nearby walker greet the dog and possibly drop a can of food in
// front of it. Only the first walker in range answers.
func (w *World) Bark(ctx context.Context) {
	var out []Notification

	w.mu.Lock()
	if _, ok := FirstTalker(w.player.Position, w.walkers); ok {
		out = append(out, Notification{
			Kind:        NotifySpeech,
			Message:     pick(w.rand, Greetings),
			Description: speechDesc,
			Duration:    SpeechDuration,
		})

		if w.rand.Float64() > FoodDropChance {
			pos := Vec2{
				X: w.player.Position.X + jitter(w.rand, FoodJitter),
				Z: w.player.Position.Z + jitter(w.rand, FoodJitter),
			}
			w.props = append(w.props, Prop{ID: w.nextProp, Position: pos})
			w.nextProp++
			out = append(out, Notification{Kind: NotifyFoodDrop, Message: foodDropMessage, Success: true, Duration: SpeechDuration})
		}
	}
	w.mu.Unlock()

	out = append(out, Notification{Kind: NotifyBark, Message: barkMessage, Duration: BarkDuration})
	w.notify(ctx, out)
}

// Eat checks the cucumber crate and eats every food can in reach. The crate is
// never used up; cans are removed.
func (w *World) Eat(ctx context.Context) {
	var out []Notification

	w.mu.Lock()
	if NearCucumbers(w.player.Position) {
		out = append(out, Notification{Kind: NotifyCucumber, Message: cucumberMessage, Success: true, Duration: EatDuration})
	}

	eaten, remaining := EatProps(w.player.Position, w.props)
	w.props = remaining
	for range eaten {
		out = append(out, Notification{Kind: NotifyFoodEaten, Message: foodEatenMessage, Success: true, Duration: EatDuration})
	}
	w.mu.Unlock()

	w.notify(ctx, out)
}

// Snapshot copies the current state.
func (w *World) Snapshot() State {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return State{
		Player:    w.player,
		Walkers:   slices.Clone(w.walkers),
		Props:     slices.Clone(w.props),
		Obstacles: slices.Clone(w.obstacles),
		AnimTime:  w.animTime,
	}
}

// Player returns the player's current state.
func (w *World) Player() Player {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.player
}

// Props returns the food cans currently on the ground.
func (w *World) Props() []Prop {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.props)
}

func (w *World) notify(ctx context.Context, ns []Notification) {
	if w.publisher == nil {
		return
	}
	for _, n := range ns {
		if err := w.publisher.Publish(ctx, n); err != nil {
			slog.WarnContext(ctx, "publishing notification", "kind", n.Kind, "error", err)
		}
	}
}
