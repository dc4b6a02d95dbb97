package notes

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

const (
	msgLoadFailed   = "Failed to load notes"
	msgCreated      = "Note created!"
	msgCreateFailed = "Failed to create note"
	msgUpdated      = "Note updated!"
	msgUpdateFailed = "Failed to update note"
	msgDeleted      = "Note deleted"
	msgDeleteFailed = "Failed to delete note"
	msgLoggedOut    = "Logged out"
	msgLogoutFailed = "Logout failed"
)

// Service is the notes client. It caches the signed in user's notes and
// refetches the whole list after every successful change.
type Service struct {
	store    Store
	session  Session
	notifier Notifier
	now      func() time.Time

	mu      sync.RWMutex
	notes   []Note
	query   string
	loading bool
}

func NewService(store Store, session Session, notifier Notifier, opts ...ServiceOpt) *Service {
	s := &Service{
		store:    store,
		session:  session,
		notifier: notifier,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// User returns the signed in user.
func (s *Service) User() (User, bool) {
	return s.session.User()
}

// Refresh replaces the cache with the backend's list. On failure the cache is
// left as it was.
func (s *Service) Refresh(ctx context.Context) error {
	u, ok := s.session.User()
	if !ok {
		return ErrNotSignedIn
	}

	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.store.List(ctx, u.ID)
	if err != nil {
		slog.ErrorContext(ctx, "loading notes", "user", u.ID, "error", err)
		s.notifier.Error(msgLoadFailed)
		return fmt.Errorf("listing notes: %w", err)
	}

	Sort(list)

	s.mu.Lock()
	s.notes = list
	s.mu.Unlock()

	return nil
}

// Create stores a new note for the signed in user.
func (s *Service) Create(ctx context.Context, title, body string) error {
	u, ok := s.session.User()
	if !ok {
		return ErrNotSignedIn
	}

	err := s.store.Insert(ctx, u.ID, NewDraft(title, body))
	return s.finish(ctx, "create", err, msgCreated, msgCreateFailed)
}

// Update replaces a note's title and body and marks it updated now.
func (s *Service) Update(ctx context.Context, id, title, body string) error {
	if _, ok := s.session.User(); !ok {
		return ErrNotSignedIn
	}

	err := s.store.Update(ctx, id, NewDraft(title, body), s.now().UTC())
	return s.finish(ctx, "update", err, msgUpdated, msgUpdateFailed)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, ok := s.session.User(); !ok {
		return ErrNotSignedIn
	}

	err := s.store.Delete(ctx, id)
	return s.finish(ctx, "delete", err, msgDeleted, msgDeleteFailed)
}

// TogglePin flips a cached note's pinned flag. It does not touch the note's
// update time and reports success only by the refreshed list.
func (s *Service) TogglePin(ctx context.Context, id string) error {
	if _, ok := s.session.User(); !ok {
		return ErrNotSignedIn
	}

	n, ok := s.cached(id)
	if !ok {
		s.notifier.Error(msgUpdateFailed)
		return fmt.Errorf("toggling pin on %s: %w", id, ErrNotFound)
	}

	if err := s.store.SetPinned(ctx, id, !n.Pinned); err != nil {
		slog.ErrorContext(ctx, "toggling pin", "id", id, "error", err)
		s.notifier.Error(msgUpdateFailed)
		return fmt.Errorf("toggling pin on %s: %w", id, err)
	}

	return s.Refresh(ctx)
}

// SignOut ends the session and drops the cache.
func (s *Service) SignOut(ctx context.Context) error {
	if _, ok := s.session.User(); !ok {
		return ErrNotSignedIn
	}

	if err := s.session.SignOut(ctx); err != nil {
		slog.ErrorContext(ctx, "signing out", "error", err)
		s.notifier.Error(userMessage(err, msgLogoutFailed))
		return fmt.Errorf("signing out: %w", err)
	}

	s.mu.Lock()
	s.notes = nil
	s.query = ""
	s.mu.Unlock()

	s.notifier.Success(msgLoggedOut)
	return nil
}

// SetQuery changes the search applied by Visible.
func (s *Service) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
}

func (s *Service) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.query
}

// Notes returns the whole cached list in display order.
func (s *Service) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.notes)
}

// Visible returns the cached notes matching the current query.
func (s *Service) Visible() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.notes, s.query)
}

func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// finish reports the outcome of a mutation and refetches after a success.
func (s *Service) finish(ctx context.Context, op string, err error, success, fallback string) error {
	if err != nil {
		slog.ErrorContext(ctx, "note operation failed", "op", op, "error", err)
		s.notifier.Error(userMessage(err, fallback))
		return fmt.Errorf("%s note: %w", op, err)
	}

	s.notifier.Success(success)
	return s.Refresh(ctx)
}

func (s *Service) cached(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (s *Service) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = v
}
