package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rmrobinson/weatherdash/services/weather"
	"go.uber.org/zap"
)

// DefaultLookupURL is the public ip-api.com endpoint.
const DefaultLookupURL = "http://ip-api.com/json/"

// Static always resolves to the configured position.
type Static struct {
	position weather.Coordinates
}

// NewStatic creates a resolver for a fixed latitude/longitude.
func NewStatic(latitude float64, longitude float64) *Static {
	return &Static{
		position: weather.Coordinates{
			Latitude:  latitude,
			Longitude: longitude,
		},
	}
}

// Resolve returns the configured position.
func (s *Static) Resolve(ctx context.Context) (weather.Coordinates, error) {
	return s.position, nil
}

// IPLookup estimates the position from the public IP address of this host.
type IPLookup struct {
	logger *zap.Logger

	url    string
	client *http.Client
}

// NewIPLookup creates a resolver that queries the supplied ip-api compatible endpoint.
func NewIPLookup(logger *zap.Logger, url string) *IPLookup {
	return &IPLookup{
		logger: logger,
		url:    url,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
	}
}

type lookupResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// Resolve queries the lookup endpoint. Any failure is reported as weather.ErrLocationDenied.
func (l *IPLookup) Resolve(ctx context.Context) (weather.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrLocationDenied, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Warn("error performing lookup",
			zap.Error(err),
		)
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrLocationDenied, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Info("received non-OK response",
			zap.Int("status_code", resp.StatusCode),
		)
		return weather.Coordinates{}, fmt.Errorf("%w: status %d", weather.ErrLocationDenied, resp.StatusCode)
	}

	body := &lookupResponse{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrLocationDenied, err)
	}

	if body.Status != "" && body.Status != "success" {
		l.logger.Info("lookup refused",
			zap.String("status", body.Status),
			zap.String("message", body.Message),
		)
		return weather.Coordinates{}, fmt.Errorf("%w: %s", weather.ErrLocationDenied, body.Message)
	}
	if body.Lat == nil || body.Lon == nil {
		return weather.Coordinates{}, fmt.Errorf("%w: lookup returned no coordinates", weather.ErrLocationDenied)
	}

	return weather.Coordinates{
		Latitude:  *body.Lat,
		Longitude: *body.Lon,
	}, nil
}

// Chain tries each resolver in order and returns the first position found.
type Chain struct {
	logger *zap.Logger

	resolvers []weather.Resolver
}

// NewChain creates a chain over the supplied resolvers.
func NewChain(logger *zap.Logger, resolvers ...weather.Resolver) *Chain {
	return &Chain{
		logger:    logger,
		resolvers: resolvers,
	}
}

// Resolve returns the first successful resolution, or weather.ErrLocationDenied if none succeed.
func (c *Chain) Resolve(ctx context.Context) (weather.Coordinates, error) {
	for idx, resolver := range c.resolvers {
		position, err := resolver.Resolve(ctx)
		if err == nil {
			return position, nil
		}

		c.logger.Debug("resolver failed",
			zap.Int("index", idx),
			zap.Error(err),
		)
	}
	return weather.Coordinates{}, weather.ErrLocationDenied
}
