package snapshots

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

func TestFSStoreScheduleRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFSStore(t.TempDir())

	schedule := domain.Schedule{
		domain.WeekKey(2): {Number: 2, Name: "Week 2", Games: []domain.Game{
			{ID: "jets-dolphins", Away: "Jets", Home: "Dolphins", Status: "Scheduled"},
		}},
	}
	if err := s.SaveSchedule(ctx, schedule); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.LoadSchedule(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	week, ok := loaded.Week(2)
	if !ok || week.Games[0].ID != "jets-dolphins" {
		t.Fatalf("unexpected schedule %+v", loaded)
	}
}

func TestFSStorePredictionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFSStore(t.TempDir())

	predictions := domain.Predictions{"week2": {"jets-dolphins": "Jets"}}
	if err := s.SavePredictions(ctx, predictions); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.LoadPredictions(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded["week2"]["jets-dolphins"] != "Jets" {
		t.Fatalf("unexpected predictions %+v", loaded)
	}
}

func TestFSStoreMissingFilesLoadEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewFSStore(t.TempDir())

	schedule, err := s.LoadSchedule(ctx)
	if err != nil || len(schedule) != 0 {
		t.Fatalf("expected empty schedule, got %v err=%v", schedule, err)
	}
	predictions, err := s.LoadPredictions(ctx)
	if err != nil || len(predictions) != 0 {
		t.Fatalf("expected empty predictions, got %v err=%v", predictions, err)
	}
}

func TestFSStoreLeavesNoTempFileBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFSStore(dir)

	if err := s.SaveSchedule(ctx, domain.Schedule{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	// Unchanged content takes the short-circuit path.
	if err := s.SaveSchedule(ctx, domain.Schedule{}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, scheduleFile+".tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file must be renamed away, stat err=%v", err)
	}
}

func TestFSStoreUnconfigured(t *testing.T) {
	var s *FSStore
	if err := s.SaveSchedule(context.Background(), domain.Schedule{}); err == nil {
		t.Fatalf("expected error from unconfigured store")
	}
}
