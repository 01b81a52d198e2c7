package store

import (
	"context"
	"sync"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

// MemoryStore keeps thread-safe copies of the schedule and predictions in
// memory. State does not survive a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	schedule    domain.Schedule
	predictions domain.Predictions
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		schedule:    make(domain.Schedule),
		predictions: make(domain.Predictions),
	}
}

// LoadSchedule returns a copy of the stored schedule.
func (s *MemoryStore) LoadSchedule(ctx context.Context) (domain.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule.Clone(), nil
}

// SaveSchedule replaces the stored schedule wholesale.
func (s *MemoryStore) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = schedule.Clone()
	return nil
}

// LoadPredictions returns a copy of the stored predictions.
func (s *MemoryStore) LoadPredictions(ctx context.Context) (domain.Predictions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePredictions(s.predictions), nil
}

// SavePredictions replaces the stored predictions wholesale.
func (s *MemoryStore) SavePredictions(ctx context.Context, predictions domain.Predictions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictions = clonePredictions(predictions)
	return nil
}

func clonePredictions(p domain.Predictions) domain.Predictions {
	out := make(domain.Predictions, len(p))
	for week, picks := range p {
		copied := make(map[string]string, len(picks))
		for id, team := range picks {
			copied[id] = team
		}
		out[week] = copied
	}
	return out
}
