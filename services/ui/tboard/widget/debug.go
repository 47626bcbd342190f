package widget

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
)

// Debug is a widget to display the most recent log lines.
type Debug struct {
	*tview.TextView

	app *tview.Application

	maxLines  int
	lines     []string
	linesLock sync.Mutex
}

// NewDebug creates a new debug widget keeping at most maxLines lines.
func NewDebug(app *tview.Application, maxLines int) *Debug {
	d := &Debug{
		TextView: tview.NewTextView(),
		app:      app,
		maxLines: maxLines,
	}

	d.SetTextAlign(tview.AlignLeft).
		SetTextColor(tcell.ColorBlue).
		SetBorder(true).
		SetTitle("Log")

	return d
}

// appendLines adds the contents to the tail and returns the text to display.
func (d *Debug) appendLines(contents string) string {
	d.linesLock.Lock()
	defer d.linesLock.Unlock()

	for _, line := range strings.Split(strings.TrimRight(contents, "\n"), "\n") {
		d.lines = append(d.lines, line)
	}
	if len(d.lines) > d.maxLines {
		d.lines = d.lines[len(d.lines)-d.maxLines:]
	}
	return strings.Join(d.lines, "\n")
}

// Refresh appends the contents to the debug widget.
func (d *Debug) Refresh(contents string) {
	text := tview.Escape(d.appendLines(contents))
	d.app.QueueUpdateDraw(func() {
		d.SetText(text)
	})
}
