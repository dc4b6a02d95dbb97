package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/supabase-community/postgrest-go"
)

const notesTable = "notes"

var newestFirst = &postgrest.OrderOpts{Ascending: false}

// Store keeps notes in a PostgREST "notes" table. Row level security on the
// server decides what the bearer may touch.
type Store struct {
	client *Client
}

func NewStore(c *Client) *Store {
	return &Store{client: c}
}

func (s *Store) List(ctx context.Context, ownerID string) ([]notes.Note, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	var out []notes.Note
	_, err := s.client.table(ctx, notesTable).
		Select("*", "", false).
		Eq("user_id", ownerID).
		Order("is_pinned", newestFirst).
		Order("updated_at", newestFirst).
		ExecuteTo(&out)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, ownerID string, d notes.Draft) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	body := struct {
		OwnerID string `json:"user_id"`
		notes.Draft
	}{OwnerID: ownerID, Draft: d}

	if _, _, err := s.client.table(ctx, notesTable).Insert(body, false, "", "minimal", "").Execute(); err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, id string, d notes.Draft, at time.Time) error {
	body := struct {
		notes.Draft
		UpdatedAt time.Time `json:"updated_at"`
	}{Draft: d, UpdatedAt: at}

	return s.patch(ctx, id, body)
}

func (s *Store) SetPinned(ctx context.Context, id string, pinned bool) error {
	body := struct {
		Pinned bool `json:"is_pinned"`
	}{Pinned: pinned}

	return s.patch(ctx, id, body)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	if _, _, err := s.client.table(ctx, notesTable).Delete("minimal", "").Eq("id", id).Execute(); err != nil {
		return fmt.Errorf("deleting %s: %w", id, err)
	}
	return nil
}

func (s *Store) patch(ctx context.Context, id string, body any) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	if _, _, err := s.client.table(ctx, notesTable).Update(body, "minimal", "").Eq("id", id).Execute(); err != nil {
		return fmt.Errorf("updating %s: %w", id, err)
	}
	return nil
}
