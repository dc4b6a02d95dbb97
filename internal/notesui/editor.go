package notesui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/pixil98/dogtown/internal/notes"
)

// editor is the create and edit dialog. Ctrl-S saves, Esc cancels.
type editor struct {
	*tview.Form

	title *tview.InputField
	body  *tview.TextArea
	id    string
}

func newEditor(save func(id, title, body string), cancel func()) *editor {
	e := &editor{
		Form:  tview.NewForm(),
		title: tview.NewInputField().SetLabel("Title").SetPlaceholder("Note title"),
		body:  tview.NewTextArea().SetPlaceholder("Note content"),
	}
	e.body.SetLabel("Content")

	submit := func() { save(e.id, e.title.GetText(), e.body.GetText()) }

	e.AddFormItem(e.title).
		AddFormItem(e.body).
		AddButton("Save", submit).
		AddButton("Cancel", cancel).
		SetCancelFunc(cancel)
	e.SetBorder(true)

	e.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyCtrlS {
			submit()
			return nil
		}
		return ev
	})

	return e
}

// open fills the form from n, or clears it for a new note.
func (e *editor) open(n *notes.Note) {
	if n == nil {
		e.id = ""
		e.title.SetText("")
		e.body.SetText("", false)
		e.SetTitle(" Create New Note ")
	} else {
		e.id = n.ID
		e.title.SetText(n.Title)
		e.body.SetText(n.Body, false)
		e.SetTitle(" Edit Note ")
	}
	e.SetFocus(0)
}
