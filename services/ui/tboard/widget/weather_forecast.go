package widget

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/rmrobinson/weatherdash/services/weather"
)

type weatherForecastRecord struct {
	*tview.Flex

	timeText    *tview.TextView
	tempText    *tview.TextView
	detailsText *tview.TextView
}

func newWeatherForecastRecord() *weatherForecastRecord {
	wfr := &weatherForecastRecord{
		Flex:        tview.NewFlex(),
		timeText:    tview.NewTextView(),
		tempText:    tview.NewTextView(),
		detailsText: tview.NewTextView(),
	}

	wfr.timeText.SetTextAlign(tview.AlignLeft)
	wfr.tempText.SetTextAlign(tview.AlignRight)
	wfr.detailsText.SetTextAlign(tview.AlignRight)

	wfr.SetDirection(tview.FlexColumn).
		AddItem(wfr.timeText, 9, 1, false).
		AddItem(wfr.tempText, 8, 1, false).
		AddItem(wfr.detailsText, 0, 1, false)

	return wfr
}

func (wfr *weatherForecastRecord) clear() {
	wfr.timeText.Clear()
	wfr.tempText.Clear()
	wfr.detailsText.Clear()
}

// WeatherForecast is a widget that lists the hours of the forecast window.
type WeatherForecast struct {
	*tview.Flex

	app *tview.Application

	records []*weatherForecastRecord
}

// NewWeatherForecast creates a new WeatherForecast widget with the specified number of rows.
// It will not show any data until Refresh() is called to display the data.
func NewWeatherForecast(app *tview.Application, rowCount int) *WeatherForecast {
	wf := &WeatherForecast{
		Flex: tview.NewFlex(),
		app:  app,
	}

	wf.SetBorder(true).
		SetTitle("Next Hours").
		SetTitleAlign(tview.AlignLeft)

	wf.SetDirection(tview.FlexRow)
	for i := 0; i < rowCount; i++ {
		wf.records = append(wf.records, newWeatherForecastRecord())
		wf.AddItem(wf.records[i], 1, 1, false)
	}

	return wf
}

// Refresh causes the forecast window to be displayed. Rows beyond the end of the window are cleared.
func (wf *WeatherForecast) Refresh(window weather.ForecastWindow, series weather.ChartSeries) {
	wf.app.QueueUpdateDraw(func() {
		for i := 0; i < len(wf.records); i++ {
			if i >= len(window) || i >= series.Len() || window[i] == nil {
				wf.records[i].clear()
				continue
			}

			record := window[i]
			wf.records[i].timeText.SetText(series.Labels[i])
			wf.records[i].tempText.SetText(fmt.Sprintf("%5.1f C", series.Values[i]))
			wf.records[i].detailsText.SetText(conditionSymbol(record.Condition.Text))
		}
	})
}

// conditionSymbol maps a condition description onto a single glyph. Unknown descriptions are returned as-is.
func conditionSymbol(text string) string {
	lower := strings.ToLower(text)

	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "thunder"):
		return "⛈"
	case strings.Contains(lower, "snow"), strings.Contains(lower, "flurr"),
		strings.Contains(lower, "sleet"), strings.Contains(lower, "blizzard"),
		strings.Contains(lower, "ice pellets"):
		return "🌨"
	case strings.Contains(lower, "patchy rain"), strings.Contains(lower, "chance of rain"):
		return "🌦"
	case strings.Contains(lower, "rain"), strings.Contains(lower, "drizzle"), strings.Contains(lower, "shower"):
		return "🌧"
	case strings.Contains(lower, "fog"), strings.Contains(lower, "mist"):
		return "🌫"
	case strings.Contains(lower, "partly"), strings.Contains(lower, "mix of sun"):
		return "🌤"
	case strings.Contains(lower, "mostly cloudy"), strings.Contains(lower, "mainly cloudy"):
		return "🌥"
	case strings.Contains(lower, "cloud"), strings.Contains(lower, "overcast"):
		return "☁"
	case strings.Contains(lower, "sun"), strings.Contains(lower, "clear"):
		return "☼"
	default:
		return text
	}
}
