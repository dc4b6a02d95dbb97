package driver

import (
	"context"
	"time"
)

const (
	DefaultInterval = time.Second / 60
)

// Task is advanced once per tick by the elapsed time since the previous tick.
type Task interface {
	Tick(ctx context.Context, dt time.Duration) error
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx context.Context, dt time.Duration) error

func (f TaskFunc) Tick(ctx context.Context, dt time.Duration) error {
	return f(ctx, dt)
}

// Driver is a clock running its tasks at a fixed interval. Independent clocks
// are independent drivers.
type Driver struct {
	name     string
	interval time.Duration
	tasks    []Task
	now      func() time.Time
}

func NewDriver(name string, tasks []Task, opts ...DriverOpt) *Driver {
	d := &Driver{
		name:     name,
		interval: DefaultInterval,
		tasks:    tasks,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := d.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := d.now()
			err := d.Tick(ctx, now.Sub(last))
			if err != nil {
				return err
			}
			last = now
		}
	}
}

func (d *Driver) Tick(ctx context.Context, dt time.Duration) error {
	for _, t := range d.tasks {
		if err := t.Tick(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}
