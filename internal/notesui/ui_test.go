package notesui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rivo/tview"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/pixil98/go-testutil"
)

var now = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

// syncDrawer runs updates immediately on the calling goroutine.
type syncDrawer struct{}

func (syncDrawer) QueueUpdateDraw(f func()) *tview.Application {
	f()
	return nil
}

// fakeStore keeps notes in memory.
type fakeStore struct {
	mu    sync.Mutex
	notes []notes.Note
	next  int
}

func (s *fakeStore) List(_ context.Context, owner string) ([]notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notes.Note
	for _, n := range s.notes {
		if n.OwnerID == owner {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *fakeStore) Insert(_ context.Context, owner string, d notes.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.notes = append(s.notes, notes.Note{ID: fmt.Sprintf("new%d", s.next), OwnerID: owner, Title: d.Title, Body: d.Body, CreatedAt: now, UpdatedAt: now})
	return nil
}

func (s *fakeStore) Update(_ context.Context, id string, d notes.Draft, at time.Time) error {
	return s.change(id, func(n *notes.Note) { n.Title, n.Body, n.UpdatedAt = d.Title, d.Body, at })
}

func (s *fakeStore) SetPinned(_ context.Context, id string, pinned bool) error {
	return s.change(id, func(n *notes.Note) { n.Pinned = pinned })
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return notes.ErrNotFound
}

func (s *fakeStore) change(id string, fn func(*notes.Note)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			fn(&s.notes[i])
			return nil
		}
	}
	return notes.ErrNotFound
}

func newUI(t *testing.T, seed ...notes.Note) (*UI, *fakeStore) {
	t.Helper()
	store := &fakeStore{notes: seed}
	status := NewStatusLine(syncDrawer{}, time.Hour)
	session := notes.NewStaticSession(notes.User{ID: "u1", Email: "dog@example.com"}, nil)
	svc := notes.NewService(store, session, status, notes.WithNow(func() time.Time { return now }))

	u := New(tview.NewApplication(), svc, status, WithDrawer(syncDrawer{}), WithNow(func() time.Time { return now }))
	u.async = func(f func()) { f() }
	u.reload()
	return u, store
}

func listTitles(u *UI) string {
	out := make([]string, 0, u.list.GetItemCount())
	for i := 0; i < u.list.GetItemCount(); i++ {
		main, _ := u.list.GetItemText(i)
		out = append(out, strings.TrimSpace(strings.TrimPrefix(main, pinMarker)))
	}
	return strings.Join(out, ",")
}

func frontPage(u *UI) string {
	name, _ := u.pages.GetFrontPage()
	return name
}

func TestRow(t *testing.T) {
	tests := map[string]struct {
		note         notes.Note
		expMain      string
		expSecondary string
	}{
		"pinned": {
			note:         notes.Note{Title: "Walk", Body: "park", Pinned: true, UpdatedAt: now.Add(-3 * time.Minute)},
			expMain:      pinMarker + "Walk",
			expSecondary: "  [gray]Updated 3 minutes ago[-]  park",
		},
		"untitled without body": {
			note:         notes.Note{UpdatedAt: now},
			expMain:      noPin + "Untitled",
			expSecondary: "  [gray]Updated just now[-]",
		},
		"body is flattened": {
			note:         notes.Note{Title: "List", Body: "cans\nbones", UpdatedAt: now.Add(-2 * time.Hour)},
			expMain:      noPin + "List",
			expSecondary: "  [gray]Updated 2 hours ago[-]  cans bones",
		},
		"tags are escaped": {
			note:         notes.Note{Title: "[red]x", UpdatedAt: now},
			expMain:      noPin + "[red[]x",
			expSecondary: "  [gray]Updated just now[-]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			main, secondary := row(tt.note, now)
			testutil.AssertEqual(t, "main", main, tt.expMain)
			testutil.AssertEqual(t, "secondary", secondary, tt.expSecondary)
		})
	}
}

func TestEmpty(t *testing.T) {
	tests := map[string]struct {
		signedIn bool
		loading  bool
		query    string
		exp      string
	}{
		"signed out": {exp: "Signed out"},
		"loading":    {signedIn: true, loading: true, exp: "Loading notes..."},
		"no match":   {signedIn: true, query: "vet", exp: "No notes found matching your search"},
		"no notes":   {signedIn: true, exp: "No notes yet"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			main, _ := empty(tt.signedIn, tt.loading, tt.query)
			testutil.AssertEqual(t, "main", main, tt.exp)
		})
	}
}

func TestUI_Render(t *testing.T) {
	u, _ := newUI(t,
		notes.Note{ID: "a", OwnerID: "u1", Title: "Vet", UpdatedAt: now.Add(-time.Hour)},
		notes.Note{ID: "b", OwnerID: "u1", Title: "Park", UpdatedAt: now},
		notes.Note{ID: "c", OwnerID: "u1", Title: "Food", Pinned: true, UpdatedAt: now.Add(-2 * time.Hour)},
	)

	testutil.AssertEqual(t, "titles", listTitles(u), "Food,Park,Vet")
	testutil.AssertEqual(t, "header", strings.Contains(u.header.GetText(true), "dog@example.com"), true)

	u.search.SetText("vet")
	testutil.AssertEqual(t, "filtered", listTitles(u), "Vet")

	u.search.SetText("zebra")
	testutil.AssertEqual(t, "no match", listTitles(u), "No notes found matching your search")
}

func TestUI_EmptyList(t *testing.T) {
	u, _ := newUI(t)
	testutil.AssertEqual(t, "titles", listTitles(u), "No notes yet")

	u.edit()
	testutil.AssertEqual(t, "editor stays closed", frontPage(u), pageMain)
}

func TestUI_Actions(t *testing.T) {
	u, store := newUI(t,
		notes.Note{ID: "a", OwnerID: "u1", Title: "Vet", UpdatedAt: now.Add(-time.Hour)},
		notes.Note{ID: "b", OwnerID: "u1", Title: "Park", UpdatedAt: now},
	)

	u.list.SetCurrentItem(1)
	u.togglePin()
	testutil.AssertEqual(t, "pinned first", listTitles(u), "Vet,Park")
	testutil.AssertEqual(t, "no toast", u.status.Last(), "")

	u.list.SetCurrentItem(1)
	u.remove()
	testutil.AssertEqual(t, "deleted", listTitles(u), "Vet")
	testutil.AssertEqual(t, "toast", u.status.Last(), "Note deleted")
	testutil.AssertEqual(t, "store", len(store.notes), 1)

	u.signOut()
	testutil.AssertEqual(t, "signed out", listTitles(u), "Signed out")
	testutil.AssertEqual(t, "toast", u.status.Last(), "Logged out")
}

func TestUI_Editor(t *testing.T) {
	u, _ := newUI(t, notes.Note{ID: "a", OwnerID: "u1", Title: "Vet", Body: "Tuesday", UpdatedAt: now.Add(-time.Hour)})

	u.edit()
	testutil.AssertEqual(t, "page", frontPage(u), pageEditor)
	testutil.AssertEqual(t, "title", u.editor.title.GetText(), "Vet")
	testutil.AssertEqual(t, "body", u.editor.body.GetText(), "Tuesday")

	u.save(u.editor.id, "Vet", "Wednesday")
	testutil.AssertEqual(t, "closed", frontPage(u), pageMain)
	testutil.AssertEqual(t, "toast", u.status.Last(), "Note updated!")

	u.create()
	testutil.AssertEqual(t, "page", frontPage(u), pageEditor)
	testutil.AssertEqual(t, "cleared", u.editor.title.GetText(), "")

	u.save(u.editor.id, "  ", "new body")
	testutil.AssertEqual(t, "toast", u.status.Last(), "Note created!")
	testutil.AssertEqual(t, "titles", listTitles(u), "Vet,Untitled")
}

func TestUI_EditorStaysOpenOnFailure(t *testing.T) {
	u, _ := newUI(t, notes.Note{ID: "a", OwnerID: "u1", Title: "Vet", UpdatedAt: now})

	u.edit()
	u.save("gone", "x", "y")

	testutil.AssertEqual(t, "page", frontPage(u), pageEditor)
	testutil.AssertEqual(t, "toast", u.status.Last(), "Failed to update note")
}
