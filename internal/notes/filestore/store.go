package filestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goerrors "github.com/pixil98/go-errors"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/pixil98/dogtown/internal/storage"
)

// noteSpec is a note as written to disk. The id is the file name.
type noteSpec struct {
	OwnerID   string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"content"`
	Pinned    bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *noteSpec) Validate() error {
	el := goerrors.NewErrorList()

	if n.OwnerID == "" {
		el.Add(fmt.Errorf("user_id must be set"))
	}
	if n.CreatedAt.IsZero() {
		el.Add(fmt.Errorf("created_at must be set"))
	}
	if n.UpdatedAt.Before(n.CreatedAt) {
		el.Add(fmt.Errorf("updated_at must not be before created_at"))
	}

	return el.Err()
}

func (n *noteSpec) note(id storage.Identifier) notes.Note {
	return notes.Note{
		ID:        id.String(),
		OwnerID:   n.OwnerID,
		Title:     n.Title,
		Body:      n.Body,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// Store keeps each note as a JSON file in one directory.
type Store struct {
	files storage.Storer[*noteSpec]
	now   func() time.Time
}

func Open(dir string, opts ...StoreOpt) (*Store, error) {
	files, err := storage.NewFileStore[*noteSpec](dir)
	if err != nil {
		return nil, fmt.Errorf("opening notes dir: %w", err)
	}

	s := &Store{files: files, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List returns the owner's notes in no particular order.
func (s *Store) List(_ context.Context, ownerID string) ([]notes.Note, error) {
	out := []notes.Note{}
	for id, n := range s.files.GetAll() {
		if n.OwnerID == ownerID {
			out = append(out, n.note(id))
		}
	}
	return out, nil
}

func (s *Store) Insert(_ context.Context, ownerID string, d notes.Draft) error {
	now := s.now().UTC()
	return s.files.Save(storage.Identifier(uuid.NewString()), &noteSpec{
		OwnerID:   ownerID,
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Store) Update(_ context.Context, id string, d notes.Draft, at time.Time) error {
	return s.update(id, func(n noteSpec) noteSpec {
		n.Title = d.Title
		n.Body = d.Body
		n.UpdatedAt = at
		return n
	})
}

func (s *Store) SetPinned(_ context.Context, id string, pinned bool) error {
	return s.update(id, func(n noteSpec) noteSpec {
		n.Pinned = pinned
		return n
	})
}

func (s *Store) Delete(_ context.Context, id string) error {
	return translate(s.files.Delete(storage.Identifier(id)))
}

// update copies the record before changing it so a failed write leaves the
// cached value untouched.
func (s *Store) update(id string, fn func(noteSpec) noteSpec) error {
	err := s.files.Update(storage.Identifier(id), func(cur *noteSpec) (*noteSpec, error) {
		next := fn(*cur)
		return &next, nil
	})
	return translate(err)
}

func translate(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %w", notes.ErrNotFound, err)
	}
	return err
}
