package sim

type worldConfig struct {
	walkers []WalkerSpec
}

type WorldOpt func(*World, *worldConfig)

// WithWalkers replaces the default walkers.
func WithWalkers(specs []WalkerSpec) WorldOpt {
	return func(_ *World, c *worldConfig) {
		c.walkers = specs
	}
}

// WithObstacles replaces the default building footprints.
func WithObstacles(obstacles []Obstacle) WorldOpt {
	return func(w *World, _ *worldConfig) {
		w.obstacles = obstacles
	}
}
