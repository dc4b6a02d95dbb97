package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/dogtown/internal/notesui"
)

type Config struct {
	Backend       BackendConfig `json:"backend"`
	Session       SessionConfig `json:"session"`
	LogFile       string        `json:"log_file"`
	ToastDuration string        `json:"toast_duration"`

	shutdown context.CancelFunc
}

// SetShutdown registers how quitting the UI stops the application.
func (c *Config) SetShutdown(cancel context.CancelFunc) {
	c.shutdown = cancel
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Backend.Validate())
	el.Add(c.Session.Validate())

	if c.ToastDuration != "" {
		d, err := time.ParseDuration(c.ToastDuration)
		if err != nil {
			el.Add(fmt.Errorf("parsing toast_duration: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("toast_duration must be positive"))
		}
	}

	return el.Err()
}

func (c *Config) toastDuration() time.Duration {
	d, err := time.ParseDuration(c.ToastDuration)
	if err != nil || d <= 0 {
		return notesui.DefaultToastDuration
	}
	return d
}

// setupLogging points the default logger away from the terminal the UI draws
// on. Without a log file, logs are dropped.
func (c *Config) setupLogging() error {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
	return nil
}
