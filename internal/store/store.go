// Package store defines the key-value persistence contract for the
// schedule cache and the user's predictions, plus an in-memory
// implementation used in tests and when persistence is disabled.
package store

import (
	"context"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

// Store persists the schedule cache and predictions across restarts. The
// two are stored under independent keys so user picks survive a schedule
// refresh. Loading missing data yields empty collections, not an error.
type Store interface {
	LoadSchedule(ctx context.Context) (domain.Schedule, error)
	SaveSchedule(ctx context.Context, schedule domain.Schedule) error
	LoadPredictions(ctx context.Context) (domain.Predictions, error)
	SavePredictions(ctx context.Context, predictions domain.Predictions) error
}
