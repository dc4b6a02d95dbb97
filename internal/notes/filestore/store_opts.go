package filestore

import "time"

type StoreOpt func(*Store)

// WithNow replaces the clock used to stamp new notes.
func WithNow(now func() time.Time) StoreOpt {
	return func(s *Store) {
		s.now = now
	}
}
