package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rivo/tview"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/pixil98/dogtown/internal/notesui"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	if err := cfg.setupLogging(); err != nil {
		return nil, err
	}

	b, err := cfg.Backend.build(cfg.Session.user())
	if err != nil {
		return nil, fmt.Errorf("opening %s backend: %w", cfg.Backend.Kind, err)
	}

	app := tview.NewApplication()
	status := notesui.NewStatusLine(app, cfg.toastDuration())
	svc := notes.NewService(b.store, b.session, status)

	var opts []notesui.UIOpt
	if cfg.shutdown != nil {
		opts = append(opts, notesui.WithOnQuit(cfg.shutdown))
	}

	workers := service.WorkerList{
		"ui": notesui.New(app, svc, status, opts...),
	}
	if b.closer != nil {
		workers["backend"] = &closeOnDone{name: cfg.Backend.Kind, c: b.closer}
	}

	return workers, nil
}

// closeOnDone releases a backend when the application stops.
type closeOnDone struct {
	name string
	c    io.Closer
}

func (w *closeOnDone) Start(ctx context.Context) error {
	<-ctx.Done()
	if err := w.c.Close(); err != nil {
		return fmt.Errorf("closing %s backend: %w", w.name, err)
	}
	slog.InfoContext(ctx, "backend closed", "backend", w.name)
	return nil
}
