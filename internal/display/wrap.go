package display

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	DefaultWidth = 80
	ellipsis     = "…"
)

// Wrap word-wraps text to width, preserving ANSI escape sequences. A width of
// zero or less uses DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Line flattens text onto one line and cuts it to width cells, marking the cut
// with an ellipsis.
func Line(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return flat
	}
	return truncate.StringWithTail(flat, uint(width), ellipsis)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Updated describes when something last changed relative to now, e.g.
// "updated 3 minutes ago".
func Updated(at, now time.Time) string {
	if now.Sub(at) < time.Second && at.Sub(now) < time.Second {
		return "updated just now"
	}
	return "updated " + humanize.RelTime(at, now, "ago", "from now")
}
