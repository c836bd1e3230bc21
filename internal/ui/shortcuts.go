package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"hotview/internal/viewer"
)

// filterKeys are the shifted digit keys in digit order, so '!' sets
// the rating filter to 1 and ')' to 0.
const filterKeys = `)!".$%^&*(`

func (a *App) buildKeyboardShortcuts() {
	c := a.win.Canvas()

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.send(viewer.EventQuit)
		case fyne.KeyLeft:
			a.send(viewer.EventPrevious)
		case fyne.KeyRight:
			a.send(viewer.EventNext)
		case fyne.KeyHome:
			a.send(viewer.EventFirst)
		case fyne.KeyEnd:
			a.send(viewer.EventLast)
		}
	})

	c.SetOnTypedRune(a.handleRune)
}

func (a *App) send(kind viewer.EventKind) {
	a.ctrl.HandleEvent(viewer.Event{Kind: kind})
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'q', 'Q':
		a.send(viewer.EventQuit)
	case 'p', 'P':
		a.send(viewer.EventPrevious)
	case 'n', 'N':
		a.send(viewer.EventNext)
	case 'h', 'H':
		a.send(viewer.EventFirst)
	case 'E':
		a.send(viewer.EventLast)
	case ' ':
		a.send(viewer.EventToggleSlideshow)
	case '+':
		a.send(viewer.EventSpeedUp)
	case '-':
		a.send(viewer.EventSlowDown)
	case 'c':
		a.send(viewer.EventToggleCentre)
	case 'e':
		a.send(viewer.EventToggleOverlay)
	case 'i':
		a.send(viewer.EventToggleInfo)
	case 'u':
		a.send(viewer.EventToggleUpdate)
	case 'x':
		a.send(viewer.EventClearSkips)
	case 't':
		a.showNotesDialog()
	default:
		if r >= '0' && r <= '9' {
			a.ctrl.HandleEvent(viewer.Event{Kind: viewer.EventRate, Digit: byte(r)})
		} else if i := strings.IndexRune(filterKeys, r); i >= 0 {
			a.ctrl.HandleEvent(viewer.Event{Kind: viewer.EventSetFilter, Digit: byte('0' + i)})
		}
	}
}

// showNotesDialog edits the notes for the current image, seeded with
// whatever is already recorded.
func (a *App) showNotesDialog() {
	entry := widget.NewEntry()
	entry.SetText(a.ctrl.Notes())
	items := []*widget.FormItem{widget.NewFormItem("Notes", entry)}
	dialog.ShowForm("Notes", "Save", "Cancel", items, func(ok bool) {
		if ok {
			a.ctrl.HandleEvent(viewer.Event{Kind: viewer.EventAnnotate, Text: entry.Text})
		}
	}, a.win)
}
