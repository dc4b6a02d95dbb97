package notes

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

const (
	DefaultTitle = "Untitled"
	PreviewLen   = 100
)

// Note is one record as stored by the backend.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"content"`
	Pinned    bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft is the user editable part of a note.
type Draft struct {
	Title string `json:"title"`
	Body  string `json:"content"`
}

// NewDraft fills in the placeholder title for a blank one.
func NewDraft(title, body string) Draft {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return Draft{Title: title, Body: body}
}

// DisplayTitle is the title shown in lists.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return DefaultTitle
	}
	return n.Title
}

// Preview returns the first PreviewLen characters of the body, with "..."
// appended when anything was cut.
func Preview(body string) string {
	r := []rune(body)
	if len(r) <= PreviewLen {
		return body
	}
	return string(r[:PreviewLen]) + "..."
}

// Sort orders notes pinned first, then most recently updated first. Notes that
// tie keep their relative order.
func Sort(ns []Note) {
	slices.SortStableFunc(ns, func(a, b Note) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.UpdatedAt.UnixNano(), a.UpdatedAt.UnixNano())
	})
}

// Filter returns the notes whose title or body contains query, ignoring case.
// An empty query matches everything.
func Filter(ns []Note, query string) []Note {
	if query == "" {
		return slices.Clone(ns)
	}

	fold := cases.Fold()
	q := fold.String(query)

	out := make([]Note, 0, len(ns))
	for _, n := range ns {
		if strings.Contains(fold.String(n.Title), q) || strings.Contains(fold.String(n.Body), q) {
			out = append(out, n)
		}
	}
	return out
}
