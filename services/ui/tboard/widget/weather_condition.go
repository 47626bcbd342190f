package widget

import (
	"fmt"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
	"github.com/rmrobinson/weatherdash/services/weather"
)

type conditionTile struct {
	label string
	value string
}

// conditionTiles formats the auxiliary readings of the current conditions. Missing conditions render as placeholders.
func conditionTiles(current *weather.CurrentConditions) []conditionTile {
	if current == nil {
		return []conditionTile{
			{"Humidity", "--%"},
			{"Wind", "-- km/h"},
			{"Feels Like", "--°"},
			{"UV Index", "--"},
			{"Pressure", "-- hPa"},
			{"Visibility", "-- km"},
		}
	}

	return []conditionTile{
		{"Humidity", fmt.Sprintf("%d%%", current.HumidityPercent)},
		{"Wind", fmt.Sprintf("%g km/h", current.WindKph)},
		{"Feels Like", fmt.Sprintf("%g°", current.FeelsLikeCelsius)},
		{"UV Index", fmt.Sprintf("%g", current.UVIndex)},
		{"Pressure", fmt.Sprintf("%g hPa", current.PressureMb)},
		{"Visibility", fmt.Sprintf("%g km", current.VisibilityKm)},
	}
}

// WeatherCondition is a widget to display the details of the current weather conditions as a grid of tiles.
type WeatherCondition struct {
	*tview.Grid

	app *tview.Application

	tiles []*tview.TextView
}

// NewWeatherCondition creates a new weather condition widget.
// Placeholders are displayed until Refresh() is called.
func NewWeatherCondition(app *tview.Application) *WeatherCondition {
	wc := &WeatherCondition{
		Grid: tview.NewGrid(),
		app:  app,
	}

	wc.SetRows(0, 0).
		SetColumns(0, 0, 0).
		SetBorder(true).
		SetTitle("Conditions").
		SetTitleAlign(tview.AlignLeft)

	for idx, tile := range conditionTiles(nil) {
		view := tview.NewTextView()
		view.SetTextAlign(tview.AlignCenter).
			SetTextColor(tcell.ColorWhite).
			SetTitle(tile.label).
			SetBorder(true).
			SetBorderColor(tcell.ColorPink)
		view.SetText(tile.value)

		wc.tiles = append(wc.tiles, view)
		wc.AddItem(view, idx/3, idx%3, 1, 1, 0, 0, false)
	}

	return wc
}

// Refresh takes the supplied conditions and updates the tiles. A nil value resets the tiles to placeholders.
func (wc *WeatherCondition) Refresh(current *weather.CurrentConditions) {
	wc.app.QueueUpdateDraw(func() {
		for idx, tile := range conditionTiles(current) {
			wc.tiles[idx].SetText(tile.value)
		}
	})
}
