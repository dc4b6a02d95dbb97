package render

type WindowOpt func(*Window)

func WithSize(width, height int32) WindowOpt {
	return func(w *Window) {
		w.width = width
		w.height = height
	}
}

func WithTitle(title string) WindowOpt {
	return func(w *Window) {
		w.title = title
	}
}

func WithTargetFPS(fps int32) WindowOpt {
	return func(w *Window) {
		w.fps = fps
	}
}

// WithSubject sets the bus subject toasts are read from.
func WithSubject(subject string) WindowOpt {
	return func(w *Window) {
		w.subject = subject
	}
}

// WithOnClose registers a function run when the window goes away, typically
// stopping the rest of the application.
func WithOnClose(fn func()) WindowOpt {
	return func(w *Window) {
		w.onClose = fn
	}
}
