// Package poller re-runs the live-discovery flow on an interval. It is
// optional: an interval of zero disables it and the manual refresh
// endpoint stays the only trigger, matching the single-control-flow model.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/logging"
)

// Refresher runs one live-discovery cycle.
type Refresher interface {
	RefreshCurrent(ctx context.Context) error
}

// Poller periodically refreshes the current week.
type Poller struct {
	refresher Refresher
	logger    *slog.Logger
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// New constructs a Poller. A non-positive interval disables it.
func New(refresher Refresher, logger *slog.Logger, interval time.Duration) *Poller {
	return &Poller{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Enabled reports whether the poller will run.
func (p *Poller) Enabled() bool {
	return p != nil && p.interval > 0
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	if !p.Enabled() {
		return
	}

	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				if err := p.refresher.RefreshCurrent(ctx); err != nil {
					logging.Error(p.logger, "scheduled refresh failed", err)
				}
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
