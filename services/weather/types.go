package weather

import (
	"fmt"
	"time"
)

// Coordinates is a position on the globe in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String returns the coordinates in the "lat,lon" form the weather APIs accept.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// Location describes where a report was generated for.
type Location struct {
	Name     string
	Country  string
	Position Coordinates
	// TimeZone is the zone the hourly records are expressed in. May be nil.
	TimeZone *time.Location
}

// Condition is a short description of the sky.
type Condition struct {
	Text string
	Icon string
	Code int
}

// Details are the auxiliary readings attached to both the current conditions and each hour.
type Details struct {
	HumidityPercent  int
	WindKph          float64
	FeelsLikeCelsius float64
	UVIndex          float64
	PressureMb       float64
	VisibilityKm     float64
}

// CurrentConditions is the observation for "now".
type CurrentConditions struct {
	ObservedAt         time.Time
	TemperatureCelsius float64
	Condition          Condition
	Details
}

// HourlyRecord is a single hour of the day's forecast.
type HourlyRecord struct {
	Time               time.Time
	TemperatureCelsius float64
	Condition          Condition
	Details
}

// Report is the result of a single successful fetch.
// A new report fully replaces whatever was displayed before.
type Report struct {
	Location Location
	Current  *CurrentConditions
	// Hours holds the present day's records, ordered by time of day.
	Hours []*HourlyRecord
}

// ForecastWindow is the contiguous run of hours selected for display, starting at the current hour.
type ForecastWindow []*HourlyRecord

// ChartSeries holds parallel label and value sequences derived from a ForecastWindow.
type ChartSeries struct {
	Labels []string
	Values []float64
}

// Len returns the number of points in the series.
func (cs ChartSeries) Len() int {
	return len(cs.Values)
}

// Snapshot is everything the rendering surface needs after a load.
type Snapshot struct {
	ID     string
	Report *Report
	Window ForecastWindow
	Series ChartSeries
	Err    error
}
