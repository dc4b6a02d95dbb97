package command

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/dogtown/internal/driver"
	"github.com/pixil98/dogtown/internal/messaging"
	"github.com/pixil98/dogtown/internal/scene"
	"github.com/pixil98/dogtown/internal/sim"
	"github.com/pixil98/go-errors"
)

const (
	ObstaclesClassic = "classic"
	ObstaclesCity    = "city"
)

type Config struct {
	InputInterval string        `json:"input_interval"`
	FrameInterval string        `json:"frame_interval"`
	Seed          uint64        `json:"seed"`
	Headless      bool          `json:"headless"`
	Obstacles     string        `json:"obstacles"`
	Subject       string        `json:"subject"`
	InputSubject  string        `json:"input_subject"`
	Window        WindowConfig  `json:"window"`
	Nats          NatsConfig    `json:"nats"`
	Console       ConsoleConfig `json:"console"`

	shutdown context.CancelFunc
}

// SetShutdown registers how the window stops the application when it closes.
func (c *Config) SetShutdown(cancel context.CancelFunc) {
	c.shutdown = cancel
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(validateInterval("input_interval", c.InputInterval))
	el.Add(validateInterval("frame_interval", c.FrameInterval))

	switch c.Obstacles {
	case "", ObstaclesClassic, ObstaclesCity:
	default:
		el.Add(fmt.Errorf("obstacles must be %q or %q", ObstaclesClassic, ObstaclesCity))
	}

	if c.inputSubject() == c.subject() {
		el.Add(fmt.Errorf("input_subject must differ from subject"))
	}

	el.Add(c.Window.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Console.Validate())

	return el.Err()
}

func validateInterval(name, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

func interval(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return driver.DefaultInterval
	}
	return d
}

func (c *Config) worldOpts() []sim.WorldOpt {
	if c.Obstacles == ObstaclesCity {
		return []sim.WorldOpt{sim.WithObstacles(scene.Footprints())}
	}
	return nil
}

func (c *Config) subject() string {
	if c.Subject != "" {
		return c.Subject
	}
	return messaging.DefaultSubject
}

func (c *Config) inputSubject() string {
	if c.InputSubject != "" {
		return c.InputSubject
	}
	return messaging.DefaultInputSubject
}
