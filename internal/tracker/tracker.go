// Package tracker owns the application state of the prediction tracker:
// the cached schedule, the current/display week pointers and the user's
// predictions. All fetch-merge-persist sequences serialize through one
// mutex, so the decision logic in the domain package stays pure.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/logging"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/metrics"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/providers"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/store"
)

const defaultSeasonWeeks = 18

var (
	// ErrWeekNotFound marks a week absent from the schedule cache.
	ErrWeekNotFound = errors.New("week not found")
	// ErrGameNotFound marks a game id absent from its week.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameLocked rejects predictions once a game has started.
	ErrGameLocked = errors.New("game has started, prediction locked")
	// ErrUnknownTeam rejects predictions for a team not in the matchup.
	ErrUnknownTeam = errors.New("team is not part of this game")
	// ErrNoSchedule marks an empty cache with no upstream data to fall
	// back on.
	ErrNoSchedule = errors.New("no schedule available")
)

// Options configures a Tracker.
type Options struct {
	Provider    providers.ScheduleProvider
	Store       store.Store
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	SeasonWeeks int
	Now         func() time.Time
}

// Tracker coordinates fetching, merging, persisting and reading tracker
// state.
type Tracker struct {
	provider    providers.ScheduleProvider
	store       store.Store
	logger      *slog.Logger
	metrics     *metrics.Recorder
	seasonWeeks int
	now         func() time.Time

	mu          sync.Mutex
	schedule    domain.Schedule
	predictions domain.Predictions
	currentWeek int    // upstream-reported current week, 0 = unknown
	displayWeek string // week key selected for display, "" = none
}

// New constructs a Tracker with sane defaults.
func New(opts Options) *Tracker {
	if opts.SeasonWeeks <= 0 {
		opts.SeasonWeeks = defaultSeasonWeeks
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	return &Tracker{
		provider:    opts.Provider,
		store:       opts.Store,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		seasonWeeks: opts.SeasonWeeks,
		now:         opts.Now,
		schedule:    make(domain.Schedule),
		predictions: make(domain.Predictions),
	}
}

// Hydrate pre-populates state from the persistence backend so cached data
// displays before any network fetch completes.
func (t *Tracker) Hydrate(ctx context.Context) error {
	schedule, err := t.store.LoadSchedule(ctx)
	if err != nil {
		return fmt.Errorf("load schedule cache: %w", err)
	}
	predictions, err := t.store.LoadPredictions(ctx)
	if err != nil {
		return fmt.Errorf("load predictions: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if schedule != nil {
		t.schedule = schedule
	}
	if predictions != nil {
		t.predictions = predictions
	}
	if t.displayWeek == "" {
		if first, ok := t.schedule.FirstWeek(); ok {
			t.displayWeek = domain.WeekKey(first.Number)
		}
	}
	logging.Info(t.logger, "hydrated from cache", logging.FieldCount, len(t.schedule))
	return nil
}

// FetchFullSchedule fetches every season week sequentially, skipping weeks
// the upstream has not published and keeping whatever already merged if an
// unexpected error aborts the loop. The cache is persisted afterwards and
// the lowest available week becomes the displayed one when nothing is
// selected yet.
func (t *Tracker) FetchFullSchedule(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var loopErr error
	for week := 1; week <= t.seasonWeeks; week++ {
		fetched, err := t.provider.FetchWeek(ctx, week)
		if errors.Is(err, providers.ErrWeekUnavailable) {
			logging.Warn(t.logger, "week not available", logging.FieldWeek, week)
			continue
		}
		if err != nil {
			loopErr = fmt.Errorf("fetch week %d: %w", week, err)
			break
		}
		t.schedule[domain.WeekKey(week)] = fetched
	}

	t.persistSchedule(ctx)

	if t.displayWeek == "" {
		if first, ok := t.schedule.FirstWeek(); ok {
			t.displayWeek = domain.WeekKey(first.Number)
		}
	}

	if loopErr != nil {
		return loopErr
	}
	logging.Info(t.logger, "full schedule fetched", logging.FieldCount, len(t.schedule))
	return nil
}

// RefreshCurrent runs the live-discovery flow: ask the upstream which week
// is current, refresh that week, and select it for display. On failure the
// display falls back to the first cached week (or stays empty without any
// cache) and the error surfaces to the caller.
func (t *Tracker) RefreshCurrent(ctx context.Context) error {
	start := time.Now()

	scoreboard, err := t.provider.FetchCurrent(ctx)
	if t.metrics != nil {
		t.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		t.mu.Lock()
		if t.displayWeek == "" {
			if first, ok := t.schedule.FirstWeek(); ok {
				t.displayWeek = domain.WeekKey(first.Number)
			}
		}
		empty := len(t.schedule) == 0
		t.mu.Unlock()

		logging.Error(t.logger, "live fetch failed", err)
		if empty {
			return fmt.Errorf("live fetch failed with no cached schedule: %w", errors.Join(err, ErrNoSchedule))
		}
		return fmt.Errorf("live fetch failed: %w", err)
	}

	t.mu.Lock()
	t.currentWeek = scoreboard.WeekNumber
	t.mu.Unlock()

	t.RefreshWeek(ctx, scoreboard.WeekNumber)

	t.mu.Lock()
	t.displayWeek = domain.WeekKey(scoreboard.WeekNumber)
	t.mu.Unlock()
	return nil
}

// RefreshWeek performs a targeted live refresh of one cached week. Fetch
// or merge problems are logged and swallowed: the caller keeps rendering
// cached data. Weeks absent from the cache are a no-op.
func (t *Tracker) RefreshWeek(ctx context.Context, week int) {
	fetched, err := t.provider.FetchWeek(ctx, week)
	if err != nil {
		logging.Error(t.logger, "week refresh failed", err, logging.FieldWeek, week)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := domain.WeekKey(week)
	cached, ok := t.schedule[key]
	if !ok {
		return
	}

	if domain.MergeWeek(&cached, fetched.Games) {
		t.schedule[key] = cached
		t.persistSchedule(ctx)
		logging.Info(t.logger, "week refreshed", logging.FieldWeek, week, logging.FieldCount, len(fetched.Games))
	}
}

// Predict records the user's pick for a game. Predictions are rejected
// once the game is classified as started and overwrite any earlier pick
// otherwise.
func (t *Tracker) Predict(ctx context.Context, week int, gameID, team string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := domain.WeekKey(week)
	cached, ok := t.schedule[key]
	if !ok {
		return ErrWeekNotFound
	}

	var game *domain.Game
	for i := range cached.Games {
		if cached.Games[i].ID == gameID {
			game = &cached.Games[i]
			break
		}
	}
	if game == nil {
		return ErrGameNotFound
	}
	if team != game.Away && team != game.Home {
		return ErrUnknownTeam
	}
	if domain.ClassifyGame(*game, t.now()).Started {
		return ErrGameLocked
	}

	t.predictions.Set(key, gameID, team)
	if err := t.store.SavePredictions(ctx, t.predictions); err != nil {
		logging.Error(t.logger, "persist predictions failed", err, logging.FieldGameID, gameID)
	}
	logging.Info(t.logger, "prediction saved", logging.FieldWeek, week, logging.FieldGameID, gameID)
	return nil
}

// SelectWeek moves the display pointer to a cached week.
func (t *Tracker) SelectWeek(week int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := domain.WeekKey(week)
	if _, ok := t.schedule[key]; !ok {
		return ErrWeekNotFound
	}
	t.displayWeek = key
	return nil
}

// CurrentWeek returns the upstream-reported current week number, 0 when
// unknown.
func (t *Tracker) CurrentWeek() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentWeek
}

// DisplayWeek returns the week number currently selected for display, 0
// when nothing is selected.
func (t *Tracker) DisplayWeek() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.displayWeek == "" {
		return 0
	}
	if w, ok := t.schedule[t.displayWeek]; ok {
		return w.Number
	}
	return 0
}

// HasSchedule reports whether any week is cached.
func (t *Tracker) HasSchedule() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.schedule) > 0
}

// persistSchedule writes the cache wholesale; failures are logged, never
// fatal, since the in-memory state remains usable.
func (t *Tracker) persistSchedule(ctx context.Context) {
	if err := t.store.SaveSchedule(ctx, t.schedule); err != nil {
		logging.Error(t.logger, "persist schedule cache failed", err)
	}
}
