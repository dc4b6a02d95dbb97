package command

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/pixil98/dogtown/internal/console"
	"github.com/pixil98/dogtown/internal/listener"
	"github.com/pixil98/dogtown/internal/messaging"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-service"
	"golang.org/x/crypto/ssh"
)

type ListenerType int

const (
	ListenerTypeTelnet ListenerType = iota
	ListenerTypeSSH
)

func (lt *ListenerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "telnet":
		*lt = ListenerTypeTelnet
	case "ssh":
		*lt = ListenerTypeSSH
	default:
		return fmt.Errorf("unknown listener type: %s", text)
	}
	return nil
}

type ListenerConfig struct {
	Protocol    ListenerType `json:"protocol"`
	Host        string       `json:"host,omitempty"`
	Port        uint16       `json:"port"`
	HostKeyPath string       `json:"host_key_path,omitempty"`
}

func (cl *ListenerConfig) Validate() error {
	el := errors.NewErrorList()

	if cl.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}
	if cl.HostKeyPath != "" && cl.Protocol != ListenerTypeSSH {
		el.Add(fmt.Errorf("host_key_path only applies to ssh listeners"))
	}

	return el.Err()
}

func (cl *ListenerConfig) addr() string {
	return net.JoinHostPort(cl.Host, strconv.Itoa(int(cl.Port)))
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager) (service.Worker, error) {
	switch cl.Protocol {
	case ListenerTypeTelnet:
		return listener.NewTelnetListener(cl.addr(), cm), nil
	case ListenerTypeSSH:
		hostKey, err := cl.loadOrGenerateHostKey()
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(cl.addr(), cm, hostKey), nil
	default:
		return nil, fmt.Errorf("unknown listener type: %v", cl.Protocol)
	}
}

func (cl *ListenerConfig) loadOrGenerateHostKey() (ssh.Signer, error) {
	if cl.HostKeyPath != "" {
		keyBytes, err := os.ReadFile(cl.HostKeyPath)
		if err != nil {
			return nil, fmt.Errorf("reading host key %q: %w", cl.HostKeyPath, err)
		}
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("parsing host key %q: %w", cl.HostKeyPath, err)
		}
		return signer, nil
	}

	slog.Warn("no host_key_path configured for ssh listener, generating ephemeral key")
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating ephemeral key: %w", err)
	}
	signer, err := ssh.NewSignerFromKey(privKey)
	if err != nil {
		return nil, fmt.Errorf("creating signer from ephemeral key: %w", err)
	}
	return signer, nil
}

// ConsoleConfig opens the world to remote text sessions. With no listeners the
// console is off.
type ConsoleConfig struct {
	Listeners   []ListenerConfig `json:"listeners"`
	MaxSessions int              `json:"max_sessions"`
}

func (c *ConsoleConfig) Validate() error {
	el := errors.NewErrorList()

	if c.MaxSessions < 0 {
		el.Add(fmt.Errorf("max_sessions must not be negative"))
	}

	seen := map[uint16]bool{}
	for i := range c.Listeners {
		l := &c.Listeners[i]
		if err := l.Validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
		if l.Port != 0 && seen[l.Port] {
			el.Add(fmt.Errorf("listener %d: port %d is used twice", i, l.Port))
		}
		seen[l.Port] = true
	}

	return el.Err()
}

// buildWorkers returns one worker per listener, each starting once bus is ready.
func (c *ConsoleConfig) buildWorkers(world console.World, bus messaging.ReadyBus, subject string) (service.WorkerList, error) {
	workers := service.WorkerList{}
	if len(c.Listeners) == 0 {
		return workers, nil
	}

	con, err := console.NewConsole(world, bus, subject)
	if err != nil {
		return nil, fmt.Errorf("creating console: %w", err)
	}
	cm := listener.NewConnectionManager(con, c.MaxSessions)

	for i := range c.Listeners {
		l := &c.Listeners[i]
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("listener %d: %w", i, err)
		}
		workers[fmt.Sprintf("console-%d", l.Port)] = &afterReady{bus: bus, w: w}
	}

	return workers, nil
}

// afterReady holds a worker back until the bus accepts subscriptions.
type afterReady struct {
	bus messaging.ReadyBus
	w   service.Worker
}

func (a *afterReady) Start(ctx context.Context) error {
	if err := a.bus.WaitReady(ctx); err != nil {
		return nil
	}
	return a.w.Start(ctx)
}
