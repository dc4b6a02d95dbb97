package notesui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/pixil98/dogtown/internal/display"
	"github.com/pixil98/dogtown/internal/notes"
)

const (
	rowWidth   = 72
	pinMarker  = "[yellow]●[-] "
	noPin      = "  "
	keyHints   = "[gray]n[-] new  [gray]enter[-] edit  [gray]p[-] pin  [gray]d[-] delete  [gray]/[-] search  [gray]L[-] logout  [gray]q[-] quit"
	searchHint = "Search notes..."
)

// row renders a note as the two list lines: marker and title, then when it was
// updated and a preview of the body.
func row(n notes.Note, now time.Time) (string, string) {
	marker := noPin
	if n.Pinned {
		marker = pinMarker
	}
	main := marker + tview.Escape(display.Line(n.DisplayTitle(), rowWidth))

	updated := display.Capitalize(display.Updated(n.UpdatedAt, now))
	secondary := "  [gray]" + updated + "[-]"
	if preview := display.Line(notes.Preview(n.Body), rowWidth-len(updated)-3); preview != "" {
		secondary += "  " + tview.Escape(preview)
	}
	return main, secondary
}

// empty returns the placeholder row shown when nothing matches.
func empty(signedIn, loading bool, query string) (string, string) {
	switch {
	case !signedIn:
		return "Signed out", "  Press q to quit"
	case loading:
		return "Loading notes...", ""
	case query != "":
		return "No notes found matching your search", ""
	default:
		return "No notes yet", "  Press n to create your first note"
	}
}

func header(u notes.User, signedIn bool) string {
	if !signedIn {
		return "[::b]Notes[::-]  [gray]signed out[-]"
	}
	return fmt.Sprintf("[::b]Notes[::-]  %s  [gray]L to log out[-]", tview.Escape(u.Email))
}
