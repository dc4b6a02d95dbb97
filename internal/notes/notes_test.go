package notes

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

var t0 = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

// memStore is an in-memory Store that can be told to fail.
type memStore struct {
	mu     sync.Mutex
	notes  []Note
	nextID int
	now    time.Time
	fail   error
	lists  int
}

func (m *memStore) List(_ context.Context, owner string) ([]Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.fail != nil {
		return nil, m.fail
	}
	out := []Note{}
	for _, n := range m.notes {
		if n.OwnerID == owner {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) Insert(_ context.Context, owner string, d Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.nextID++
	m.notes = append(m.notes, Note{
		ID: fmt.Sprintf("n%d", m.nextID), OwnerID: owner, Title: d.Title, Body: d.Body,
		CreatedAt: m.now, UpdatedAt: m.now,
	})
	return nil
}

func (m *memStore) find(id string) (int, error) {
	for i, n := range m.notes {
		if n.ID == id {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

func (m *memStore) Update(_ context.Context, id string, d Draft, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	i, err := m.find(id)
	if err != nil {
		return err
	}
	m.notes[i].Title, m.notes[i].Body, m.notes[i].UpdatedAt = d.Title, d.Body, at
	return nil
}

func (m *memStore) SetPinned(_ context.Context, id string, pinned bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	i, err := m.find(id)
	if err != nil {
		return err
	}
	m.notes[i].Pinned = pinned
	return nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	i, err := m.find(id)
	if err != nil {
		return err
	}
	m.notes = slices.Delete(m.notes, i, i+1)
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Success(msg string) { r.add("ok: " + msg) }
func (r *recordingNotifier) Error(msg string) { r.add("error: " + msg) }

func (r *recordingNotifier) add(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recordingNotifier) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.messages)
}

func ids(ns []Note) string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.ID)
	}
	return strings.Join(out, ",")
}

func TestNewDraft(t *testing.T) {
	tests := map[string]struct {
		title    string
		expTitle string
	}{
		"empty title":      {title: "", expTitle: DefaultTitle},
		"blank title":      {title: "  \t", expTitle: DefaultTitle},
		"title kept as is": {title: " Shopping ", expTitle: " Shopping "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := NewDraft(tt.title, "body")
			testutil.AssertEqual(t, "title", d.Title, tt.expTitle)
			testutil.AssertEqual(t, "body", d.Body, "body")
		})
	}
}

func TestPreview(t *testing.T) {
	hundred := strings.Repeat("a", PreviewLen)

	tests := map[string]struct {
		body string
		exp  string
	}{
		"short body":         {body: "milk, eggs", exp: "milk, eggs"},
		"exactly the limit":  {body: hundred, exp: hundred},
		"one over the limit": {body: hundred + "b", exp: hundred + "..."},
		"counts characters":  {body: strings.Repeat("ü", PreviewLen+5), exp: strings.Repeat("ü", PreviewLen) + "..."},
		"empty body":         {body: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "preview", Preview(tt.body), tt.exp)
		})
	}
}

func TestSort(t *testing.T) {
	ns := []Note{
		{ID: "old", UpdatedAt: t0},
		{ID: "pinned-old", Pinned: true, UpdatedAt: t0},
		{ID: "new", UpdatedAt: t0.Add(2 * time.Hour)},
		{ID: "tie-a", UpdatedAt: t0.Add(time.Hour)},
		{ID: "pinned-new", Pinned: true, UpdatedAt: t0.Add(3 * time.Hour)},
		{ID: "tie-b", UpdatedAt: t0.Add(time.Hour)},
	}

	Sort(ns)

	testutil.AssertEqual(t, "order", ids(ns), "pinned-new,pinned-old,new,tie-a,tie-b,old")
}

func TestFilter(t *testing.T) {
	ns := []Note{
		{ID: "1", Title: "Äpfel kaufen", Body: "beim Markt"},
		{ID: "2", Title: "Dog walk", Body: "Around the PARK"},
		{ID: "3", Title: "Taxes", Body: ""},
	}

	tests := map[string]struct {
		query string
		exp   string
	}{
		"empty query returns all": {query: "", exp: "1,2,3"},
		"title ignores case":      {query: "DOG", exp: "2"},
		"body ignores case":       {query: "park", exp: "2"},
		"non ascii folding":       {query: "äPFEL", exp: "1"},
		"substring":               {query: "ax", exp: "3"},
		"no match":                {query: "cucumber", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "matches", ids(Filter(ns, tt.query)), tt.exp)
		})
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{Status: 409, Code: "23505", Message: "duplicate key"}

	testutil.AssertEqual(t, "error", err.Error(), "api error 409 (23505): duplicate key")
	testutil.AssertEqual(t, "user message", userMessage(fmt.Errorf("wrapped: %w", err), "fallback"), "duplicate key")
	testutil.AssertEqual(t, "fallback", userMessage(fmt.Errorf("dial tcp: refused"), "fallback"), "fallback")
}

func TestStaticSession(t *testing.T) {
	revoked := 0
	s := NewStaticSession(User{ID: "u1", Email: "a@b.c"}, func(context.Context) error {
		revoked++
		return nil
	})

	u, ok := s.User()
	testutil.AssertEqual(t, "signed in", ok, true)
	testutil.AssertEqual(t, "email", u.Email, "a@b.c")

	testutil.AssertEqual(t, "sign out", s.SignOut(context.Background()), nil)
	_, ok = s.User()
	testutil.AssertEqual(t, "signed out", ok, false)
	testutil.AssertEqual(t, "revoked", revoked, 1)

	_, ok = NewStaticSession(User{}, nil).User()
	testutil.AssertEqual(t, "anonymous", ok, false)
}
