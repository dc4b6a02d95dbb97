package notesui

import "time"

type UIOpt func(*UI)

// WithNow replaces the clock used for "updated ... ago".
func WithNow(now func() time.Time) UIOpt {
	return func(u *UI) {
		u.now = now
	}
}

// WithOnQuit sets a func called when the user quits.
func WithOnQuit(f func()) UIOpt {
	return func(u *UI) {
		u.onQuit = f
	}
}

func WithDrawer(d Drawer) UIOpt {
	return func(u *UI) {
		u.draw = d
	}
}
