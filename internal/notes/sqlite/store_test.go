package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/pixil98/go-testutil"
)

var t0 = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

// tickingClock advances one second per call.
func tickingClock() func() time.Time {
	at := t0
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "notes.sqlite")
	s, err := Open(path, WithNow(tickingClock()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func titles(ns []notes.Note) string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Title)
	}
	return strings.Join(out, ",")
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	testutil.AssertErrorContains(t, err, "empty db path")
}

func TestStore_InsertAndList(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	for _, title := range []string{"first", "second", "third"} {
		if err := s.Insert(ctx, "u1", notes.NewDraft(title, "body of "+title)); err != nil {
			t.Fatalf("insert %s: %v", title, err)
		}
	}
	if err := s.Insert(ctx, "u2", notes.NewDraft("foreign", "")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.List(ctx, "u1")

	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "order", titles(got), "third,second,first")
	testutil.AssertEqual(t, "body", got[0].Body, "body of third")
	testutil.AssertEqual(t, "owner", got[0].OwnerID, "u1")
	testutil.AssertEqual(t, "pinned", got[0].Pinned, false)
	testutil.AssertEqual(t, "created", got[0].CreatedAt, t0.Add(3*time.Second))
	testutil.AssertEqual(t, "updated", got[0].UpdatedAt, got[0].CreatedAt)
	if got[0].ID == got[1].ID || got[0].ID == "" {
		t.Errorf("ids not unique: %q %q", got[0].ID, got[1].ID)
	}
}

func TestStore_UpdatePinDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	for _, title := range []string{"a", "b", "c"} {
		if err := s.Insert(ctx, "u1", notes.NewDraft(title, "")); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	list, _ := s.List(ctx, "u1")
	byTitle := map[string]string{}
	for _, n := range list {
		byTitle[n.Title] = n.ID
	}

	if err := s.Update(ctx, byTitle["a"], notes.NewDraft("a2", "edited"), t0.Add(time.Hour).Add(500*time.Millisecond)); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.List(ctx, "u1")
	testutil.AssertEqual(t, "after update", titles(got), "a2,c,b")
	testutil.AssertEqual(t, "updated at", got[0].UpdatedAt, t0.Add(time.Hour).Add(500*time.Millisecond))

	if err := s.SetPinned(ctx, byTitle["b"], true); err != nil {
		t.Fatalf("pin: %v", err)
	}
	got, _ = s.List(ctx, "u1")
	testutil.AssertEqual(t, "after pin", titles(got), "b,a2,c")
	testutil.AssertEqual(t, "pinned", got[0].Pinned, true)

	if err := s.Delete(ctx, byTitle["c"]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = s.List(ctx, "u1")
	testutil.AssertEqual(t, "after delete", titles(got), "b,a2")
}

func TestStore_MissingNote(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	tests := map[string]func() error{
		"update": func() error { return s.Update(ctx, "nope", notes.NewDraft("x", ""), t0) },
		"pin":    func() error { return s.SetPinned(ctx, "nope", true) },
		"delete": func() error { return s.Delete(ctx, "nope") },
	}

	for name, run := range tests {
		t.Run(name, func(t *testing.T) {
			err := run()
			testutil.AssertEqual(t, "not found", errors.Is(err, notes.ErrNotFound), true)
		})
	}
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	s, path := openStore(t)
	if err := s.Insert(ctx, "u1", notes.NewDraft("kept", "")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_ = s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.List(ctx, "u1")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "titles", titles(got), "kept")
}
