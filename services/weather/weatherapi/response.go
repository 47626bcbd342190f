package weatherapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/rmrobinson/weatherdash/services/weather"
)

const hourLayout = "2006-01-02 15:04"

type condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type details struct {
	Humidity   int     `json:"humidity"`
	WindKph    float64 `json:"wind_kph"`
	FeelsLikeC float64 `json:"feelslike_c"`
	UV         float64 `json:"uv"`
	PressureMb float64 `json:"pressure_mb"`
	VisKm      float64 `json:"vis_km"`
}

type forecastResponse struct {
	Location struct {
		Name    string  `json:"name"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		TzID    string  `json:"tz_id"`
	} `json:"location"`
	Current *struct {
		LastUpdatedEpoch int64     `json:"last_updated_epoch"`
		TempC            float64   `json:"temp_c"`
		Condition        condition `json:"condition"`
		details
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Hour []struct {
				TimeEpoch int64     `json:"time_epoch"`
				Time      string    `json:"time"`
				TempC     float64   `json:"temp_c"`
				Condition condition `json:"condition"`
				details
			} `json:"hour"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (fr *forecastResponse) toReport() (*weather.Report, error) {
	if fr.Current == nil {
		return nil, fmt.Errorf("%w: response has no current conditions", weather.ErrFetchFailed)
	}
	if len(fr.Forecast.ForecastDay) < 1 {
		return nil, fmt.Errorf("%w: response has no forecast days", weather.ErrFetchFailed)
	}

	tz := time.Local
	if fr.Location.TzID != "" {
		if loc, err := time.LoadLocation(fr.Location.TzID); err == nil {
			tz = loc
		}
	}

	report := &weather.Report{
		Location: weather.Location{
			Name:    fr.Location.Name,
			Country: fr.Location.Country,
			Position: weather.Coordinates{
				Latitude:  fr.Location.Lat,
				Longitude: fr.Location.Lon,
			},
			TimeZone: tz,
		},
		Current: &weather.CurrentConditions{
			ObservedAt:         time.Unix(fr.Current.LastUpdatedEpoch, 0).In(tz),
			TemperatureCelsius: fr.Current.TempC,
			Condition:          fr.Current.Condition.toCondition(),
			Details:            fr.Current.details.toDetails(),
		},
	}

	for _, hour := range fr.Forecast.ForecastDay[0].Hour {
		at := time.Unix(hour.TimeEpoch, 0).In(tz)
		if hour.TimeEpoch == 0 {
			parsed, err := time.ParseInLocation(hourLayout, hour.Time, tz)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid hour %q", weather.ErrFetchFailed, hour.Time)
			}
			at = parsed
		}

		report.Hours = append(report.Hours, &weather.HourlyRecord{
			Time:               at,
			TemperatureCelsius: hour.TempC,
			Condition:          hour.Condition.toCondition(),
			Details:            hour.details.toDetails(),
		})
	}

	return report, nil
}

func (c condition) toCondition() weather.Condition {
	icon := c.Icon
	// The API returns protocol-relative icon URLs.
	if strings.HasPrefix(icon, "//") {
		icon = "https:" + icon
	}
	return weather.Condition{
		Text: c.Text,
		Icon: icon,
		Code: c.Code,
	}
}

func (d details) toDetails() weather.Details {
	return weather.Details{
		HumidityPercent:  d.Humidity,
		WindKph:          d.WindKph,
		FeelsLikeCelsius: d.FeelsLikeC,
		UVIndex:          d.UV,
		PressureMb:       d.PressureMb,
		VisibilityKm:     d.VisKm,
	}
}
