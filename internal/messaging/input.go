package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/dogtown/internal/sim"
)

// Input actions accepted on the input subject.
const (
	ActionKey  = "key"
	ActionBark = "bark"
	ActionEat  = "eat"
)

var keyNames = map[string]sim.Key{
	"up":    sim.KeyUp,
	"down":  sim.KeyDown,
	"left":  sim.KeyLeft,
	"right": sim.KeyRight,
}

// KeyByName maps "up", "down", "left" or "right" to its key.
func KeyByName(name string) (sim.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

const (
	// DefaultInputSubject carries remote input when none is configured.
	DefaultInputSubject = "dogtown.input"

	// RemoteSource is the key source remote commands hold keys under.
	RemoteSource = "remote"
)

// InputCommand is a remote key press or action for a headless world. Clients
// that name a Source hold keys separately from other remote clients.
type InputCommand struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Down   bool   `json:"down,omitempty"`
	Source string `json:"source,omitempty"`
}

func (c InputCommand) source() string {
	if c.Source == "" {
		return RemoteSource
	}
	return RemoteSource + "/" + c.Source
}

// Controller is the part of the world input drives. Keys are held per source.
type Controller interface {
	SetKey(source string, k sim.Key, down bool)
	ReleaseKeys(source string)
	Bark(ctx context.Context)
	Eat(ctx context.Context)
}

// ReadyBus is a bus that becomes usable some time after construction.
type ReadyBus interface {
	Subscriber
	WaitReady(ctx context.Context) error
}

// InputListener applies commands from a bus subject to a world.
type InputListener struct {
	bus     ReadyBus
	subject string
	world   Controller
}

func NewInputListener(bus ReadyBus, subject string, world Controller) *InputListener {
	return &InputListener{bus: bus, subject: subject, world: world}
}

func (l *InputListener) Start(ctx context.Context) error {
	if err := l.bus.WaitReady(ctx); err != nil {
		return nil
	}

	unsub, err := l.bus.Subscribe(l.subject, func(data []byte) {
		var cmd InputCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			slog.WarnContext(ctx, "dropping malformed input", "subject", l.subject, "error", err)
			return
		}
		if err := l.Apply(ctx, cmd); err != nil {
			slog.WarnContext(ctx, "rejecting input", "subject", l.subject, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing to input: %w", err)
	}
	defer unsub()

	slog.InfoContext(ctx, "listening for input", "subject", l.subject)
	<-ctx.Done()
	return nil
}

func (l *InputListener) Apply(ctx context.Context, cmd InputCommand) error {
	switch cmd.Action {
	case ActionKey:
		k, ok := KeyByName(cmd.Key)
		if !ok {
			return fmt.Errorf("unknown key %q", cmd.Key)
		}
		l.world.SetKey(cmd.source(), k, cmd.Down)
	case ActionBark:
		l.world.Bark(ctx)
	case ActionEat:
		l.world.Eat(ctx)
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
	return nil
}

// NotificationLog writes every notification on a subject to the log. Headless
// runs use it in place of on screen toasts.
type NotificationLog struct {
	bus     ReadyBus
	subject string
}

func NewNotificationLog(bus ReadyBus, subject string) *NotificationLog {
	return &NotificationLog{bus: bus, subject: subject}
}

func (n *NotificationLog) Start(ctx context.Context) error {
	if err := n.bus.WaitReady(ctx); err != nil {
		return nil
	}

	unsub, err := SubscribeNotifications(n.bus, n.subject, func(note sim.Notification) {
		slog.InfoContext(ctx, "notification", "kind", note.Kind, "message", note.Message, "description", note.Description)
	})
	if err != nil {
		return fmt.Errorf("subscribing to notifications: %w", err)
	}
	defer unsub()

	<-ctx.Done()
	return nil
}
