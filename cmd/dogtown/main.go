package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pixil98/dogtown/cmd/dogtown/command"
	"github.com/pixil98/go-service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &command.Config{}
	cfg.SetShutdown(cancel)

	app, err := service.NewApp(cfg, command.BuildWorkers)
	if err != nil {
		slog.Error("creating application", "error", err)
		os.Exit(1)
	}

	err = app.Run(ctx)
	if err != nil {
		slog.Error("running application", "error", err)
		os.Exit(1)
	}

	slog.Info("exiting")
}
