package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/logging"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/metrics"
)

// instrumentedProvider wraps a ScheduleProvider with debug logging and
// per-call metrics. No retries happen here: a failed call is final for the
// cycle and the manual refresh endpoint is the remedy.
type instrumentedProvider struct {
	inner    ScheduleProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider decorates the provider with logging and metrics.
func NewInstrumentedProvider(inner ScheduleProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScheduleProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *instrumentedProvider) FetchWeek(ctx context.Context, week int) (domain.Week, error) {
	start := time.Now()
	result, err := p.inner.FetchWeek(ctx, week)
	p.record(ctx, "fetch week", time.Since(start), err, slog.Int(logging.FieldWeek, week))
	return result, err
}

func (p *instrumentedProvider) FetchCurrent(ctx context.Context) (domain.Scoreboard, error) {
	start := time.Now()
	result, err := p.inner.FetchCurrent(ctx)
	p.record(ctx, "fetch current scoreboard", time.Since(start), err)
	return result, err
}

func (p *instrumentedProvider) record(ctx context.Context, op string, duration time.Duration, err error, attrs ...any) {
	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, duration, err)
	}

	logger := logging.FromContext(ctx, p.logger)
	if logger == nil {
		return
	}
	attrs = append(attrs,
		slog.String(logging.FieldProvider, p.name),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		logger.Debug(op+" failed", append(attrs, "error", err)...)
		return
	}
	logger.Debug(op+" ok", attrs...)
}
