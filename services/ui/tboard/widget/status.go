package widget

import (
	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
)

// Status is a single line widget showing the last load error, if any.
type Status struct {
	*tview.TextView

	app *tview.Application
}

// NewStatus creates a new, empty status line.
func NewStatus(app *tview.Application) *Status {
	s := &Status{
		TextView: tview.NewTextView(),
		app:      app,
	}

	s.SetTextAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorRed)

	return s
}

// Refresh replaces the displayed message. An empty message clears the line.
func (s *Status) Refresh(message string) {
	s.app.QueueUpdateDraw(func() {
		s.SetText(message)
	})
}
