package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"text/template"

	"github.com/pixil98/dogtown/internal/display"
	"github.com/pixil98/dogtown/internal/messaging"
	"github.com/pixil98/dogtown/internal/sim"
)

const (
	prompt       = "> "
	nearbyRadius = 6.0
)

var errQuit = errors.New("quit")

// World is what a console session reads and drives.
type World interface {
	messaging.Controller
	Snapshot() sim.State
}

type command struct {
	Usage string
	Help  string
	run   func(ctx context.Context, s *session, args []string) (string, error)
}

// Console runs line based remote control sessions over any connection.
type Console struct {
	world    World
	bus      messaging.Subscriber
	subject  string
	commands map[string]command
	look     *template.Template
	help     string
	sessions atomic.Int64
}

// NewConsole builds a console for world. With a nil bus sessions do not see
// notifications.
func NewConsole(world World, bus messaging.Subscriber, subject string) (*Console, error) {
	look, err := parseTemplate("look", lookTemplate)
	if err != nil {
		return nil, err
	}
	helpTmpl, err := parseTemplate("help", helpTemplate)
	if err != nil {
		return nil, err
	}

	c := &Console{
		world:   world,
		bus:     bus,
		subject: subject,
		look:    look,
	}
	c.commands = map[string]command{
		"bark":    {Usage: "bark", Help: "bark at whoever is close", run: runBark},
		"eat":     {Usage: "eat", Help: "eat food lying next to the dog", run: runEat},
		"hold":    {Usage: "hold <direction>", Help: "start walking up, down, left or right", run: runHold},
		"release": {Usage: "release <direction>", Help: "stop walking in a direction", run: runRelease},
		"stop":    {Usage: "stop", Help: "release every direction", run: runStop},
		"look":    {Usage: "look", Help: "describe the dog's surroundings", run: c.runLook},
		"help":    {Usage: "help", Help: "show this list", run: func(context.Context, *session, []string) (string, error) { return c.help, nil }},
		"quit":    {Usage: "quit", Help: "close the connection", run: runQuit},
	}

	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]command, 0, len(names))
	for _, name := range names {
		list = append(list, c.commands[name])
	}
	if c.help, err = expand(helpTmpl, list); err != nil {
		return nil, err
	}

	return c, nil
}

// session is one connection's state. It holds keys under its own source so
// ending it never releases keys held by the window or other sessions.
type session struct {
	world  World
	source string
	out    *lockedWriter
}

// RunSession serves one connection until the client quits, disconnects or ctx
// ends.
func (c *Console) RunSession(ctx context.Context, rw io.ReadWriter) error {
	s := &session{
		world:  c.world,
		source: fmt.Sprintf("console-%d", c.sessions.Add(1)),
		out:    &lockedWriter{w: rw},
	}
	defer s.releaseAll()

	if c.bus != nil {
		unsub, err := messaging.SubscribeNotifications(c.bus, c.subject, func(n sim.Notification) {
			s.out.printf("\n%s\n%s", display.Wrap("* "+n.Message, 0), prompt)
		})
		if err != nil {
			return fmt.Errorf("subscribing to notifications: %w", err)
		}
		defer unsub()
	}

	s.out.printf("Welcome to Dogtown. Type help for commands.\n%s", prompt)

	scanner := bufio.NewScanner(rw)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		reply, err := c.exec(ctx, s, scanner.Text())
		if errors.Is(err, errQuit) {
			s.out.printf("Bye!\n")
			return nil
		}
		if err != nil {
			reply = err.Error() + "\n"
		}
		s.out.printf("%s%s", display.Wrap(reply, 0), prompt)
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// exec runs one input line and returns the text to send back.
func (c *Console) exec(ctx context.Context, s *session, line string) (string, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return "", nil
	}

	cmd, ok := c.commands[fields[0]]
	if !ok {
		return "", fmt.Errorf("unknown command %q, try help", fields[0])
	}

	slog.DebugContext(ctx, "console command", "command", fields[0])
	return cmd.run(ctx, s, fields[1:])
}

func runBark(ctx context.Context, s *session, _ []string) (string, error) {
	s.world.Bark(ctx)
	return "", nil
}

func runEat(ctx context.Context, s *session, _ []string) (string, error) {
	s.world.Eat(ctx)
	return "", nil
}

func runHold(_ context.Context, s *session, args []string) (string, error) {
	k, err := direction(args)
	if err != nil {
		return "", err
	}
	s.world.SetKey(s.source, k, true)
	return "", nil
}

func runRelease(_ context.Context, s *session, args []string) (string, error) {
	k, err := direction(args)
	if err != nil {
		return "", err
	}
	s.world.SetKey(s.source, k, false)
	return "", nil
}

func runStop(_ context.Context, s *session, _ []string) (string, error) {
	s.releaseAll()
	return "", nil
}

func runQuit(context.Context, *session, []string) (string, error) {
	return "", errQuit
}

func direction(args []string) (sim.Key, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("which direction? up, down, left or right")
	}
	k, ok := messaging.KeyByName(args[0])
	if !ok {
		return 0, fmt.Errorf("unknown direction %q", args[0])
	}
	return k, nil
}

type lookView struct {
	Player sim.Player
	Facing string
	Nearby []string
	Props  []sim.Prop
}

func (c *Console) runLook(_ context.Context, _ *session, _ []string) (string, error) {
	st := c.world.Snapshot()

	view := lookView{Player: st.Player, Facing: facing(st.Player.Heading), Props: st.Props}
	for _, w := range st.Walkers {
		if d := sim.Distance(st.Player.Position, w.Position); d < nearbyRadius {
			view.Nearby = append(view.Nearby, fmt.Sprintf("person %d (%.1fm)", w.ID, d))
		}
	}

	return expand(c.look, view)
}

// facing names the closest of the four movement headings.
func facing(heading float64) string {
	names := []struct {
		name    string
		heading float64
	}{
		{"up", sim.HeadingUp},
		{"left", sim.HeadingLeft},
		{"down", sim.HeadingDown},
		{"right", sim.HeadingRight},
	}

	best, bestDiff := names[0].name, math.Inf(1)
	for _, n := range names {
		diff := math.Abs(math.Remainder(heading-n.heading, 2*math.Pi))
		if diff < bestDiff {
			best, bestDiff = n.name, diff
		}
	}
	return best
}

func (s *session) releaseAll() {
	s.world.ReleaseKeys(s.source)
}

// lockedWriter serializes replies and notifications on one connection.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintf(l.w, format, args...); err != nil {
		slog.Debug("console write failed", "error", err)
	}
}
