package command

import (
	"fmt"

	"github.com/pixil98/dogtown/internal/driver"
	"github.com/pixil98/dogtown/internal/messaging"
	"github.com/pixil98/dogtown/internal/render"
	"github.com/pixil98/dogtown/internal/sim"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	bus, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	for _, spec := range sim.DefaultWalkers() {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("walker %d: %w", spec.ID, err)
		}
	}

	publisher := messaging.NewNotificationPublisher(bus, cfg.Subject)
	world := sim.NewWorld(publisher, sim.NewRand(cfg.Seed), cfg.worldOpts()...)

	// The input clock runs at a fixed rate no matter how fast frames are drawn.
	input := driver.NewDriver("input",
		[]driver.Task{driver.TaskFunc(world.Input)},
		driver.WithInterval(interval(cfg.InputInterval)),
	)

	workers := service.WorkerList{
		"nats":         bus,
		"input":        input,
		"remote-input": messaging.NewInputListener(bus, cfg.inputSubject(), world),
	}

	consoles, err := cfg.Console.buildWorkers(world, bus, cfg.Subject)
	if err != nil {
		return nil, err
	}
	for name, w := range consoles {
		workers[name] = w
	}

	if cfg.Headless {
		workers["frame"] = driver.NewDriver("frame",
			[]driver.Task{driver.TaskFunc(world.Frame)},
			driver.WithInterval(interval(cfg.FrameInterval)),
		)
		workers["notifications"] = messaging.NewNotificationLog(bus, cfg.Subject)
		return workers, nil
	}

	opts := cfg.Window.opts()
	if cfg.Subject != "" {
		opts = append(opts, render.WithSubject(cfg.Subject))
	}
	if cfg.shutdown != nil {
		opts = append(opts, render.WithOnClose(cfg.shutdown))
	}
	// The scene gets its own source; the world's is not safe to share across threads.
	workers["window"] = render.NewWindow(world, bus, sim.NewRand(cfg.Seed), opts...)

	return workers, nil
}
