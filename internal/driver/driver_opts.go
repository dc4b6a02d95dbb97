package driver

import "time"

type DriverOpt func(*Driver)

func WithInterval(interval time.Duration) DriverOpt {
	return func(d *Driver) {
		d.interval = interval
	}
}

// WithNow replaces the time source used to measure elapsed time between ticks.
func WithNow(now func() time.Time) DriverOpt {
	return func(d *Driver) {
		d.now = now
	}
}
