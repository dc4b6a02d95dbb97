package notes

import "time"

type ServiceOpt func(*Service)

// WithNow replaces the clock used to stamp updates.
func WithNow(now func() time.Time) ServiceOpt {
	return func(s *Service) {
		s.now = now
	}
}
