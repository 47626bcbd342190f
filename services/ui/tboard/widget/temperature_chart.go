package widget

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
	"github.com/rmrobinson/weatherdash/services/weather"
)

const (
	axisWidth  = 7
	pointRune  = '●'
	lineRune   = '·'
	noDataText = "No forecast data"
)

type plotPoint struct {
	col int
	row int
}

// plotPoints places each value in a width x height cell area. Row 0 is the top of the area.
// The first and last values sit on the first and last columns.
func plotPoints(values []float64, width int, height int) []plotPoint {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	min, max := valueRange(values)

	var points []plotPoint
	for idx, value := range values {
		col := 0
		if len(values) > 1 {
			col = idx * (width - 1) / (len(values) - 1)
		}

		row := height / 2
		if max > min {
			row = (height - 1) - int(math.Round((value-min)/(max-min)*float64(height-1)))
		}

		points = append(points, plotPoint{col, row})
	}
	return points
}

func valueRange(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, value := range values[1:] {
		min = math.Min(min, value)
		max = math.Max(max, value)
	}
	return min, max
}

// labelColumns returns, for each label, the column it should start at or -1 if it would overlap the previous one.
func labelColumns(labels []string, points []plotPoint, width int) []int {
	cols := make([]int, len(labels))
	nextFree := 0
	for idx, label := range labels {
		cols[idx] = -1
		if idx >= len(points) {
			continue
		}

		start := points[idx].col - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > width {
			start = width - len(label)
		}
		if start < nextFree {
			continue
		}

		cols[idx] = start
		nextFree = start + len(label) + 1
	}
	return cols
}

// TemperatureChart is a widget that plots the forecast window's temperatures as a line.
type TemperatureChart struct {
	*tview.Box

	app *tview.Application

	series weather.ChartSeries
}

// NewTemperatureChart creates a new, empty chart.
func NewTemperatureChart(app *tview.Application) *TemperatureChart {
	tc := &TemperatureChart{
		Box: tview.NewBox(),
		app: app,
	}

	tc.SetBorder(true).
		SetBorderColor(tcell.ColorPink).
		SetTitle("Temperature (°C)").
		SetTitleColor(tcell.ColorPink).
		SetTitleAlign(tview.AlignLeft)

	return tc
}

// Refresh replaces the plotted series.
func (tc *TemperatureChart) Refresh(series weather.ChartSeries) {
	tc.app.QueueUpdateDraw(func() {
		tc.series = series
	})
}

// Draw draws the chart onto the screen.
func (tc *TemperatureChart) Draw(screen tcell.Screen) {
	tc.Box.Draw(screen)

	x, y, width, height := tc.GetInnerRect()
	plotX, plotWidth := x+axisWidth, width-axisWidth
	plotHeight := height - 1

	if tc.series.Len() == 0 || plotWidth <= 0 || plotHeight <= 0 {
		tview.Print(screen, noDataText, x, y+height/2, width, tview.AlignCenter, tcell.ColorGray)
		return
	}

	min, max := valueRange(tc.series.Values)
	tview.Print(screen, fmt.Sprintf("%5.1f", max), x, y, axisWidth-1, tview.AlignRight, tcell.ColorPink)
	tview.Print(screen, fmt.Sprintf("%5.1f", min), x, y+plotHeight-1, axisWidth-1, tview.AlignRight, tcell.ColorPink)

	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorPink)
	pointStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	points := plotPoints(tc.series.Values, plotWidth, plotHeight)
	for idx := 1; idx < len(points); idx++ {
		from, to := points[idx-1], points[idx]
		for col := from.col + 1; col < to.col; col++ {
			frac := float64(col-from.col) / float64(to.col-from.col)
			row := from.row + int(math.Round(frac*float64(to.row-from.row)))
			screen.SetContent(plotX+col, y+row, lineRune, nil, lineStyle)
		}
	}
	for _, p := range points {
		screen.SetContent(plotX+p.col, y+p.row, pointRune, nil, pointStyle)
	}

	for idx, col := range labelColumns(tc.series.Labels, points, plotWidth) {
		if col < 0 {
			continue
		}
		tview.Print(screen, tc.series.Labels[idx], plotX+col, y+plotHeight, plotWidth-col, tview.AlignLeft, tcell.ColorPink)
	}
}
