package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rmrobinson/weatherdash/services/weather"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public weatherapi.com endpoint.
	DefaultBaseURL = "https://api.weatherapi.com/v1/"

	requestTimeout = time.Second * 10
)

// Service retrieves reports from the weatherapi.com forecast endpoint.
type Service struct {
	logger *zap.Logger

	baseURL string
	apiKey  string

	client  *http.Client
	limiter *rate.Limiter
}

// NewService creates a new weatherapi.com feed. The base URL is expected to end in a '/'; one is added if missing.
func NewService(logger *zap.Logger, baseURL string, apiKey string) *Service {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Service{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SetRateLimit restricts outgoing requests to rps per second. A value <= 0 removes the limit.
func (s *Service) SetRateLimit(rps float64) {
	if rps <= 0 {
		s.limiter = nil
		return
	}
	s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// GetReport retrieves the current conditions and today's hourly forecast for the supplied position.
func (s *Service) GetReport(ctx context.Context, position weather.Coordinates) (*weather.Report, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrFetchFailed, err)
		}
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("q", position.String())
	params.Set("days", "1")
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"forecast.json?"+params.Encode(), nil)
	if err != nil {
		s.logger.Warn("error creating new request",
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", weather.ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("error performing request",
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", weather.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Info("received non-OK response",
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", weather.ErrFetchFailed, resp.StatusCode)
	}

	body := &forecastResponse{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		s.logger.Warn("error decoding response",
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", weather.ErrFetchFailed, err)
	}

	report, err := body.toReport()
	if err != nil {
		s.logger.Warn("unusable response",
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("report retrieved",
		zap.String("location", report.Location.Name),
		zap.Int("hour_count", len(report.Hours)),
	)
	return report, nil
}
