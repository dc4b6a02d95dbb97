package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixil98/dogtown/internal/sim"
)

const DefaultSubject = "dogtown.notify"

var ErrNotStarted = errors.New("nats server not started")

type Bus interface {
	Publish(subject string, data []byte) error
}

type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// NotificationPublisher sends simulation notifications to a bus subject as JSON.
type NotificationPublisher struct {
	bus     Bus
	subject string
}

func NewNotificationPublisher(bus Bus, subject string) *NotificationPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NotificationPublisher{bus: bus, subject: subject}
}

func (p *NotificationPublisher) Publish(ctx context.Context, n sim.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	slog.DebugContext(ctx, "publishing notification", "subject", p.subject, "kind", n.Kind)

	if err := p.bus.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", p.subject, err)
	}
	return nil
}

// SubscribeNotifications decodes every message on subject and hands it to fn.
// Messages that fail to decode are logged and dropped.
func SubscribeNotifications(sub Subscriber, subject string, fn func(sim.Notification)) (func(), error) {
	if subject == "" {
		subject = DefaultSubject
	}
	return sub.Subscribe(subject, func(data []byte) {
		var n sim.Notification
		if err := json.Unmarshal(data, &n); err != nil {
			slog.Warn("dropping malformed notification", "subject", subject, "error", err)
			return
		}
		fn(n)
	})
}
