package weather

import (
	"errors"
)

var (
	// ErrLocationDenied is returned if the user's coordinates could not be obtained.
	ErrLocationDenied = errors.New("location access denied")
	// ErrFetchFailed is returned if the weather data source failed or returned unusable data.
	ErrFetchFailed = errors.New("weather fetch failed")
	// ErrMalformedForecast is returned by Validate if the hourly records are not a well-formed day.
	ErrMalformedForecast = errors.New("malformed hourly forecast")
)

// UserMessage collapses a load error into the single line shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrLocationDenied) {
		return "Location access denied"
	}
	return "Unable to fetch weather or location data"
}
