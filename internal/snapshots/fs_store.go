// Package snapshots persists the schedule cache and predictions as JSON
// files on disk, with atomic replace-on-write.
package snapshots

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

const (
	scheduleFile    = "schedule.json"
	predictionsFile = "predictions.json"
)

// FSStore is a filesystem-backed store.Store implementation rooted at a
// base directory.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// BasePath exposes the store root path (primarily for testing).
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// LoadSchedule reads the schedule snapshot; a missing file yields an empty
// schedule.
func (s *FSStore) LoadSchedule(ctx context.Context) (domain.Schedule, error) {
	schedule := make(domain.Schedule)
	if err := s.load(scheduleFile, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveSchedule writes the schedule snapshot.
func (s *FSStore) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	return s.save(scheduleFile, schedule)
}

// LoadPredictions reads the predictions snapshot; a missing file yields an
// empty map.
func (s *FSStore) LoadPredictions(ctx context.Context) (domain.Predictions, error) {
	predictions := make(domain.Predictions)
	if err := s.load(predictionsFile, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}

// SavePredictions writes the predictions snapshot.
func (s *FSStore) SavePredictions(ctx context.Context, predictions domain.Predictions) error {
	return s.save(predictionsFile, predictions)
}

func (s *FSStore) load(name string, target any) error {
	if s == nil || s.basePath == "" {
		return errors.New("snapshot store not configured")
	}
	data, err := os.ReadFile(filepath.Join(s.basePath, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (s *FSStore) save(name string, payload any) error {
	if s == nil || s.basePath == "" {
		return errors.New("snapshot store not configured")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	target := filepath.Join(s.basePath, name)
	if existing, readErr := os.ReadFile(target); readErr == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
