package notesui

import (
	"sync"
	"time"

	"github.com/rivo/tview"
)

const DefaultToastDuration = 4 * time.Second

// Drawer runs f on the UI goroutine and redraws. *tview.Application is one.
type Drawer interface {
	QueueUpdateDraw(f func()) *tview.Application
}

// StatusLine is a one line view that shows the latest notification until it
// expires or is replaced.
type StatusLine struct {
	*tview.TextView

	draw Drawer
	ttl  time.Duration

	mu   sync.Mutex
	gen  int
	last string
}

func NewStatusLine(draw Drawer, ttl time.Duration) *StatusLine {
	if ttl <= 0 {
		ttl = DefaultToastDuration
	}
	return &StatusLine{
		TextView: tview.NewTextView().SetDynamicColors(true),
		draw:     draw,
		ttl:      ttl,
	}
}

func (s *StatusLine) Success(msg string) {
	s.show("[green]✓[-] ", msg)
}

func (s *StatusLine) Error(msg string) {
	s.show("[red]✗[-] ", msg)
}

// Last returns the text of the notification currently shown.
func (s *StatusLine) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

func (s *StatusLine) show(prefix, msg string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.last = msg
	s.mu.Unlock()

	text := prefix + tview.Escape(msg)
	s.draw.QueueUpdateDraw(func() { s.SetText(text) })

	time.AfterFunc(s.ttl, func() { s.expire(gen) })
}

func (s *StatusLine) expire(gen int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.last = ""
	s.mu.Unlock()

	s.draw.QueueUpdateDraw(func() { s.Clear() })
}
