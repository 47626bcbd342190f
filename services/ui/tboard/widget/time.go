package widget

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
)

// Time is a widget to display today's date and the time at the forecast location.
type Time struct {
	*tview.TextView

	app *tview.Application

	location     *time.Location
	locationLock sync.Mutex
}

// NewTime creates a new time widget using the supplied timezone until SetLocation is called.
func NewTime(app *tview.Application, location *time.Location) *Time {
	t := &Time{
		TextView: tview.NewTextView(),
		app:      app,
		location: location,
	}

	t.SetTextAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorLime).
		SetBorder(true).
		SetTitle(location.String())

	return t
}

// SetLocation switches the widget to the timezone of the forecast location.
func (t *Time) SetLocation(location *time.Location) {
	if location == nil {
		return
	}

	t.locationLock.Lock()
	t.location = location
	t.locationLock.Unlock()

	t.app.QueueUpdateDraw(func() {
		t.SetTitle(location.String())
	})
}

func (t *Time) text(now time.Time) string {
	t.locationLock.Lock()
	now = now.In(t.location)
	t.locationLock.Unlock()

	return now.Format("Mon, 02 Jan 2006") + "\n" + now.Format("15:04:05 MST")
}

// Run updates the displayed time every second until the context is cancelled.
func (t *Time) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		t.app.QueueUpdateDraw(func() {
			t.SetText(t.text(time.Now()))
		})

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
