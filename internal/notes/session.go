package notes

import (
	"context"
	"sync"
)

// User is the signed in identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session interface {
	User() (User, bool)
	SignOut(ctx context.Context) error
}

// StaticSession is a session for a fixed user. Signing out runs the optional
// revoke func and forgets the user.
type StaticSession struct {
	mu     sync.RWMutex
	user   *User
	revoke func(context.Context) error
}

func NewStaticSession(u User, revoke func(context.Context) error) *StaticSession {
	s := &StaticSession{revoke: revoke}
	if u.ID != "" {
		s.user = &u
	}
	return s
}

func (s *StaticSession) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *StaticSession) SignOut(ctx context.Context) error {
	if s.revoke != nil {
		if err := s.revoke(ctx); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
