package widget

import (
	"fmt"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
	"github.com/rmrobinson/weatherdash/services/weather"
)

// headlineText renders the location, current temperature and condition. A nil report renders the loading state.
func headlineText(report *weather.Report) string {
	if report == nil || report.Current == nil {
		return "\n[yellow]--°[white]\n\nLoading..."
	}

	return fmt.Sprintf("[::b]%s, %s[::-]\n[yellow]%g°[white] %s\n\n%s",
		tview.Escape(report.Location.Name),
		tview.Escape(report.Location.Country),
		report.Current.TemperatureCelsius,
		conditionSymbol(report.Current.Condition.Text),
		tview.Escape(report.Current.Condition.Text),
	)
}

// WeatherHeadline is a widget showing where the user is and what it is like outside right now.
type WeatherHeadline struct {
	*tview.TextView

	app *tview.Application
}

// NewWeatherHeadline creates a new headline widget in its loading state.
func NewWeatherHeadline(app *tview.Application) *WeatherHeadline {
	wh := &WeatherHeadline{
		TextView: tview.NewTextView(),
		app:      app,
	}

	wh.SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorWhite).
		SetBorder(true).
		SetBorderColor(tcell.ColorPink).
		SetTitle("Now")
	wh.SetText(headlineText(nil))

	return wh
}

// Refresh displays the supplied report.
func (wh *WeatherHeadline) Refresh(report *weather.Report) {
	wh.app.QueueUpdateDraw(func() {
		wh.SetText(headlineText(report))
	})
}
