package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resolver obtains the user's current position.
// Implementations report any failure as ErrLocationDenied.
type Resolver interface {
	Resolve(ctx context.Context) (Coordinates, error)
}

// Feed retrieves the current conditions and today's hourly records for a position.
// Implementations report any failure as ErrFetchFailed.
type Feed interface {
	GetReport(ctx context.Context, position Coordinates) (*Report, error)
}

// Dashboard runs the load pipeline: resolve location, fetch the report, then project the forecast window.
type Dashboard struct {
	logger *zap.Logger

	resolver Resolver
	feed     Feed
	labeler  *Labeler
	now      func() time.Time
}

// NewDashboard creates a new dashboard pipeline. If now is nil, time.Now is used; if labeler is nil, en-US labels are used.
func NewDashboard(logger *zap.Logger, resolver Resolver, feed Feed, labeler *Labeler, now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	if labeler == nil {
		labeler = NewLabeler(defaultLocale)
	}
	return &Dashboard{
		logger:   logger,
		resolver: resolver,
		feed:     feed,
		labeler:  labeler,
		now:      now,
	}
}

// Load runs the pipeline once. It never returns nil; failures are recorded on the snapshot's Err field.
func (d *Dashboard) Load(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		ID: uuid.New().String(),
	}
	logger := d.logger.With(zap.String("load_id", snap.ID))

	position, err := d.resolver.Resolve(ctx)
	if err != nil {
		logger.Warn("unable to resolve location",
			zap.Error(err),
		)
		snap.Err = wrapAs(ErrLocationDenied, err)
		return snap
	}

	logger.Debug("location resolved",
		zap.Float64("latitude", position.Latitude),
		zap.Float64("longitude", position.Longitude),
	)

	report, err := d.feed.GetReport(ctx, position)
	if err != nil {
		logger.Warn("unable to fetch weather report",
			zap.Error(err),
		)
		snap.Err = wrapAs(ErrFetchFailed, err)
		return snap
	} else if report == nil || report.Current == nil {
		logger.Warn("unable to fetch weather report (empty report)")
		snap.Err = ErrFetchFailed
		return snap
	}

	now := d.now()
	if report.Location.TimeZone != nil {
		now = now.In(report.Location.TimeZone)
	}

	snap.Report = report
	snap.Window = ProjectWindow(report.Hours, now.Hour())
	snap.Series = NewChartSeries(snap.Window, d.labeler)

	if err := Validate(report.Hours); err != nil {
		logger.Info("hourly forecast is not a full day",
			zap.Error(err),
		)
	}

	logger.Info("weather loaded",
		zap.String("location", report.Location.Name),
		zap.Int("current_hour", now.Hour()),
		zap.Int("window_size", len(snap.Window)),
	)
	return snap
}

func wrapAs(kind error, err error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %v", kind, err)
}
