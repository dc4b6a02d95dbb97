package notesui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/pixil98/dogtown/internal/notes"
)

const (
	pageMain   = "main"
	pageEditor = "editor"
)

// UI is the terminal notes client. It runs as a worker until the user quits or
// the context ends.
type UI struct {
	app    *tview.Application
	draw   Drawer
	svc    *notes.Service
	status *StatusLine
	now    func() time.Time
	onQuit func()
	async  func(func())
	ctx    context.Context

	pages  *tview.Pages
	header *tview.TextView
	search *tview.InputField
	list   *tview.List
	editor *editor
	shown  []notes.Note
}

func New(app *tview.Application, svc *notes.Service, status *StatusLine, opts ...UIOpt) *UI {
	u := &UI{
		app:    app,
		draw:   app,
		svc:    svc,
		status: status,
		now:    time.Now,
		onQuit: func() {},
		async:  func(f func()) { go f() },
		ctx:    context.Background(),
	}

	for _, opt := range opts {
		opt(u)
	}

	u.layout()
	return u
}

func (u *UI) layout() {
	u.header = tview.NewTextView().SetDynamicColors(true)

	u.search = tview.NewInputField().
		SetLabel("Search: ").
		SetPlaceholder(searchHint).
		SetChangedFunc(func(text string) {
			u.svc.SetQuery(text)
			u.render()
		}).
		SetDoneFunc(func(tcell.Key) {
			u.app.SetFocus(u.list)
		})

	u.list = tview.NewList().ShowSecondaryText(true).SetHighlightFullLine(true)
	u.list.SetInputCapture(u.handleKey)
	u.list.AddItem("Loading notes...", "", 0, nil)

	hints := tview.NewTextView().SetDynamicColors(true).SetText(keyHints)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.header, 1, 0, false).
		AddItem(u.search, 1, 0, false).
		AddItem(u.list, 0, 1, true).
		AddItem(u.status, 1, 0, false).
		AddItem(hints, 1, 0, false)

	u.editor = newEditor(u.save, u.closeEditor)

	u.pages = tview.NewPages().
		AddPage(pageMain, main, true, true).
		AddPage(pageEditor, centered(u.editor, 80, 20), true, false)

	u.app.SetRoot(u.pages, true).SetFocus(u.list)
}

func (u *UI) Start(ctx context.Context) error {
	u.ctx = ctx
	slog.InfoContext(ctx, "starting notes ui")

	u.reload()

	done := make(chan error, 1)
	go func() { done <- u.app.Run() }()

	select {
	case <-ctx.Done():
		u.app.Stop()
		<-done
		slog.InfoContext(ctx, "notes ui stopped")
		return nil
	case err := <-done:
		u.onQuit()
		if err != nil {
			return fmt.Errorf("running terminal ui: %w", err)
		}
		return nil
	}
}

// render rebuilds the header and list from the service. Runs on the UI
// goroutine.
func (u *UI) render() {
	user, signedIn := u.svc.User()
	u.header.SetText(header(user, signedIn))

	cur := u.list.GetCurrentItem()
	u.shown = u.svc.Visible()
	u.list.Clear()

	if len(u.shown) == 0 {
		main, secondary := empty(signedIn, u.svc.Loading(), u.svc.Query())
		u.list.AddItem(main, secondary, 0, nil)
		return
	}

	now := u.now()
	for _, n := range u.shown {
		main, secondary := row(n, now)
		u.list.AddItem(main, secondary, 0, nil)
	}
	if cur < len(u.shown) {
		u.list.SetCurrentItem(cur)
	}
}

func (u *UI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEnter:
		u.edit()
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'n':
			u.create()
		case 'p':
			u.togglePin()
		case 'd':
			u.remove()
		case '/':
			u.app.SetFocus(u.search)
		case 'L':
			u.signOut()
		case 'q':
			u.app.Stop()
		default:
			return ev
		}
		return nil
	}
	return ev
}

func (u *UI) selected() (notes.Note, bool) {
	i := u.list.GetCurrentItem()
	if i < 0 || i >= len(u.shown) {
		return notes.Note{}, false
	}
	return u.shown[i], true
}

// run calls op off the UI goroutine and redraws when it returns.
func (u *UI) run(op func(context.Context) error, then func(error)) {
	u.async(func() {
		err := op(u.ctx)
		u.draw.QueueUpdateDraw(func() {
			if then != nil {
				then(err)
			}
			u.render()
		})
	})
}

func (u *UI) reload() {
	u.run(u.svc.Refresh, nil)
}

func (u *UI) create() {
	if _, ok := u.svc.User(); !ok {
		return
	}
	u.openEditor(nil)
}

func (u *UI) edit() {
	if n, ok := u.selected(); ok {
		u.openEditor(&n)
	}
}

func (u *UI) togglePin() {
	if n, ok := u.selected(); ok {
		u.run(func(ctx context.Context) error { return u.svc.TogglePin(ctx, n.ID) }, nil)
	}
}

func (u *UI) remove() {
	if n, ok := u.selected(); ok {
		u.run(func(ctx context.Context) error { return u.svc.Delete(ctx, n.ID) }, nil)
	}
}

func (u *UI) signOut() {
	u.run(u.svc.SignOut, nil)
}

func (u *UI) openEditor(n *notes.Note) {
	u.editor.open(n)
	u.pages.ShowPage(pageEditor)
	u.app.SetFocus(u.editor)
}

func (u *UI) closeEditor() {
	u.pages.HidePage(pageEditor)
	u.app.SetFocus(u.list)
}

// save stores the editor's content. The editor stays open when the store
// rejects the change.
func (u *UI) save(id, title, body string) {
	op := func(ctx context.Context) error {
		if id == "" {
			return u.svc.Create(ctx, title, body)
		}
		return u.svc.Update(ctx, id, title, body)
	}
	u.run(op, func(err error) {
		if err == nil {
			u.closeEditor()
		}
	})
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
