package providers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/metrics"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/providers"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/testutil"
)

func TestInstrumentedProviderPassesThrough(t *testing.T) {
	inner := &testutil.ScriptedProvider{
		WeeksByNumber: map[int]domain.Week{
			3: {Number: 3, Name: domain.WeekName(3)},
		},
		Current: domain.Scoreboard{WeekNumber: 3},
	}
	recorder := metrics.NewRecorder()
	p := providers.NewInstrumentedProvider(inner, "espn", nil, recorder)

	week, err := p.FetchWeek(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if week.Number != 3 {
		t.Fatalf("unexpected week: %+v", week)
	}

	scoreboard, err := p.FetchCurrent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scoreboard.WeekNumber != 3 {
		t.Fatalf("unexpected scoreboard: %+v", scoreboard)
	}

	snap := recorder.ProviderSnapshot("espn")
	if snap.Calls != 2 || snap.Errors != 0 {
		t.Fatalf("expected 2 clean calls recorded, got %+v", snap)
	}
}

func TestInstrumentedProviderNeverRetries(t *testing.T) {
	inner := &testutil.ScriptedProvider{
		WeekErrors: map[int]error{5: errors.New("connection reset")},
		CurrentErr: errors.New("scoreboard down"),
	}
	recorder := metrics.NewRecorder()
	p := providers.NewInstrumentedProvider(inner, "espn", nil, recorder)

	if _, err := p.FetchWeek(context.Background(), 5); err == nil {
		t.Fatalf("expected the inner error to surface")
	}
	if _, err := p.FetchCurrent(context.Background()); err == nil {
		t.Fatalf("expected the inner error to surface")
	}

	if len(inner.WeekCalls) != 1 || inner.CurrentCalls != 1 {
		t.Fatalf("a failed call is final, got week calls %v, current calls %d", inner.WeekCalls, inner.CurrentCalls)
	}

	snap := recorder.ProviderSnapshot("espn")
	if snap.Calls != 2 || snap.Errors != 2 {
		t.Fatalf("expected 2 failed calls recorded, got %+v", snap)
	}
}

func TestWeekUnavailableSentinelSurvivesDecoration(t *testing.T) {
	inner := &testutil.ScriptedProvider{}
	p := providers.NewInstrumentedProvider(inner, "espn", nil, nil)

	_, err := p.FetchWeek(context.Background(), 9)
	if !errors.Is(err, providers.ErrWeekUnavailable) {
		t.Fatalf("expected ErrWeekUnavailable, got %v", err)
	}
}
