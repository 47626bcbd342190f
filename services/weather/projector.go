package weather

import (
	"fmt"
)

const (
	// WindowSize is the maximum number of hours shown in a forecast window.
	WindowSize  = 12
	hoursPerDay = 24
)

// ProjectWindow selects the hours starting at currentHour, up to WindowSize of them.
// The window never wraps into the next day; if currentHour is past the end of hours the window is empty.
// The input is neither sorted nor validated; nil records within the selected hours are dropped.
func ProjectWindow(hours []*HourlyRecord, currentHour int) ForecastWindow {
	if currentHour < 0 || currentHour >= len(hours) {
		return ForecastWindow{}
	}

	end := currentHour + WindowSize
	if end > len(hours) {
		end = len(hours)
	}

	window := make(ForecastWindow, 0, end-currentHour)
	for _, record := range hours[currentHour:end] {
		if record == nil {
			continue
		}
		window = append(window, record)
	}
	return window
}

// NewChartSeries derives one label and one temperature value per non-nil record of the window, in order.
// A nil labeler formats labels as en-US.
func NewChartSeries(window ForecastWindow, labeler *Labeler) ChartSeries {
	if labeler == nil {
		labeler = NewLabeler(defaultLocale)
	}

	series := ChartSeries{
		Labels: make([]string, 0, len(window)),
		Values: make([]float64, 0, len(window)),
	}

	for _, record := range window {
		if record == nil {
			continue
		}
		series.Labels = append(series.Labels, labeler.Label(record.Time))
		series.Values = append(series.Values, record.TemperatureCelsius)
	}
	return series
}

// Validate checks that hours holds a full day in ascending order.
// ProjectWindow does not call this; callers that want a strict contract can.
func Validate(hours []*HourlyRecord) error {
	if len(hours) != hoursPerDay {
		return fmt.Errorf("%w: expected %d records, got %d", ErrMalformedForecast, hoursPerDay, len(hours))
	}
	for i := 1; i < len(hours); i++ {
		if hours[i] == nil || hours[i-1] == nil {
			return fmt.Errorf("%w: missing record at %d", ErrMalformedForecast, i)
		}
		if !hours[i].Time.After(hours[i-1].Time) {
			return fmt.Errorf("%w: record %d is not after record %d", ErrMalformedForecast, i, i-1)
		}
	}
	return nil
}
