package weatherapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rmrobinson/weatherdash/services/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func forecastBody(hourCount int) string {
	var hours []string
	for h := 0; h < hourCount; h++ {
		hours = append(hours, fmt.Sprintf(`{
			"time": "2024-06-03 %02d:00",
			"temp_c": %d.5,
			"condition": {"text": "Clear", "icon": "//cdn.weatherapi.com/weather/64x64/night/113.png", "code": 1000},
			"humidity": 60,
			"wind_kph": 7.2,
			"feelslike_c": 12.1,
			"uv": 1,
			"pressure_mb": 1016,
			"vis_km": 10
		}`, h, 10+h))
	}

	return `{
		"location": {"name": "Kitchener", "country": "Canada", "lat": 43.45, "lon": -80.49, "tz_id": "UTC"},
		"current": {
			"last_updated_epoch": 1717423200,
			"temp_c": 18.3,
			"condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/weather/64x64/day/116.png", "code": 1003},
			"humidity": 72,
			"wind_kph": 11.2,
			"feelslike_c": 17.9,
			"uv": 4,
			"pressure_mb": 1012,
			"vis_km": 16
		},
		"forecast": {"forecastday": [{"hour": [` + strings.Join(hours, ",") + `]}]}
	}`
}

func TestGetReport(t *testing.T) {
	var query map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast.json", r.URL.Path)
		query = map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		fmt.Fprint(w, forecastBody(24))
	}))
	defer srv.Close()

	svc := NewService(zap.NewNop(), srv.URL+"/v1", "secret")
	report, err := svc.GetReport(context.Background(), weather.Coordinates{Latitude: 43.45, Longitude: -80.49})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"key":    "secret",
		"q":      "43.45,-80.49",
		"days":   "1",
		"aqi":    "no",
		"alerts": "no",
	}, query)

	assert.Equal(t, "Kitchener", report.Location.Name)
	assert.Equal(t, "Canada", report.Location.Country)
	assert.Equal(t, 43.45, report.Location.Position.Latitude)
	assert.Equal(t, 18.3, report.Current.TemperatureCelsius)
	assert.Equal(t, "Partly cloudy", report.Current.Condition.Text)
	assert.Equal(t, "https://cdn.weatherapi.com/weather/64x64/day/116.png", report.Current.Condition.Icon)
	assert.Equal(t, weather.Details{
		HumidityPercent:  72,
		WindKph:          11.2,
		FeelsLikeCelsius: 17.9,
		UVIndex:          4,
		PressureMb:       1012,
		VisibilityKm:     16,
	}, report.Current.Details)
	assert.Equal(t, time.Unix(1717423200, 0).Unix(), report.Current.ObservedAt.Unix())

	require.Len(t, report.Hours, 24)
	assert.NoError(t, weather.Validate(report.Hours))
	assert.Equal(t, 14, report.Hours[14].Time.Hour())
	assert.Equal(t, 24.5, report.Hours[14].TemperatureCelsius)
	assert.Equal(t, 60, report.Hours[14].HumidityPercent)
}

func TestGetReportEpochTimes(t *testing.T) {
	body := `{
		"location": {"name": "Nowhere", "tz_id": "UTC"},
		"current": {"temp_c": 1},
		"forecast": {"forecastday": [{"hour": [{"time_epoch": 1717416000, "temp_c": 3}]}]}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	report, err := NewService(zap.NewNop(), srv.URL+"/", "k").GetReport(context.Background(), weather.Coordinates{})
	require.NoError(t, err)
	require.Len(t, report.Hours, 1)
	assert.Equal(t, time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC), report.Hours[0].Time.UTC())
}

type failureTest struct {
	name   string
	status int
	body   string
}

var failureTests = []failureTest{
	{"server error", http.StatusInternalServerError, `{}`},
	{"forbidden key", http.StatusForbidden, `{"error": {"code": 2008, "message": "API key has been disabled."}}`},
	{"bad json", http.StatusOK, `{"location": `},
	{"no current", http.StatusOK, `{"forecast": {"forecastday": [{"hour": []}]}}`},
	{"no forecast days", http.StatusOK, `{"current": {"temp_c": 3}, "forecast": {"forecastday": []}}`},
	{"bad hour", http.StatusOK, `{"current": {"temp_c": 3}, "forecast": {"forecastday": [{"hour": [{"time": "noon"}]}]}}`},
}

func TestGetReportFailures(t *testing.T) {
	for _, tt := range failureTests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			report, err := NewService(zap.NewNop(), srv.URL+"/", "k").GetReport(context.Background(), weather.Coordinates{})
			assert.Nil(t, report)
			assert.ErrorIs(t, err, weather.ErrFetchFailed)
		})
	}
}

func TestGetReportUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewService(zap.NewNop(), srv.URL+"/", "k").GetReport(context.Background(), weather.Coordinates{})
	assert.ErrorIs(t, err, weather.ErrFetchFailed)
}

func TestGetReportRateLimitCancelled(t *testing.T) {
	svc := NewService(zap.NewNop(), "http://127.0.0.1:1/", "k")
	svc.SetRateLimit(0.001)
	// Consume the single burst token.
	svc.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetReport(ctx, weather.Coordinates{})
	assert.ErrorIs(t, err, weather.ErrFetchFailed)
}
