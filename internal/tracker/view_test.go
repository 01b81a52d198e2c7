package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/testutil"
)

func TestWeekViewGroupsPicksAndState(t *testing.T) {
	// Thursday final, Sunday live, Sunday upcoming.
	thursday := testutil.MustParseRFC3339("2025-09-11T19:00:00Z")
	sunday := testutil.MustParseRFC3339("2025-09-14T17:00:00Z")
	now := testutil.MustParseRFC3339("2025-09-14T18:30:00Z")

	final := testutil.CompleteGame(testutil.NewGame("Bills", "Chiefs", thursday), 17, 24)
	live := testutil.NewGame("Jets", "Dolphins", sunday)
	live.Status = "3rd Quarter"
	upcoming := testutil.NewGame("Packers", "Bears", sunday.Add(5*time.Hour))

	provider := &testutil.ScriptedProvider{
		WeeksByNumber: map[int]domain.Week{
			2: testutil.NewWeek(2, final, live, upcoming),
		},
	}
	trk := New(Options{Provider: provider, SeasonWeeks: 2, Now: testutil.NowAt(now)})
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if err := trk.Predict(context.Background(), 2, "packers-bears", "Packers"); err != nil {
		t.Fatalf("predict failed: %v", err)
	}

	view, err := trk.WeekView(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Days) != 2 {
		t.Fatalf("expected Thursday and Sunday sections, got %+v", view.Days)
	}
	if view.Days[0].Day != "Thursday" || view.Days[1].Day != "Sunday" {
		t.Fatalf("days out of order: %q, %q", view.Days[0].Day, view.Days[1].Day)
	}

	finalView := view.Days[0].Games[0]
	if !finalView.Started || finalView.Live {
		t.Fatalf("final game classified wrong: %+v", finalView)
	}
	if finalView.PickStatus != domain.PickIncorrect {
		t.Fatalf("missed pick on a completed game reads incorrect, got %q", finalView.PickStatus)
	}

	liveView := view.Days[1].Games[0]
	if !liveView.Started || !liveView.Live {
		t.Fatalf("in-progress game classified wrong: %+v", liveView)
	}

	upcomingView := view.Days[1].Games[1]
	if upcomingView.Started {
		t.Fatalf("future game must not be started: %+v", upcomingView)
	}
	if upcomingView.Prediction != "Packers" || upcomingView.PickStatus != domain.PickPending {
		t.Fatalf("open pick must render as pending, got %+v", upcomingView)
	}

	if view.Stats.Total != 3 || view.Stats.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", view.Stats)
	}
	if view.Grade != nil {
		t.Fatalf("grade must wait for all games to complete")
	}
}

func TestWeekViewGradeAppearsWhenWeekCompletes(t *testing.T) {
	kickoff := testutil.MustParseRFC3339("2025-09-07T17:00:00Z")
	now := kickoff.Add(7 * 24 * time.Hour)

	g1 := testutil.CompleteGame(testutil.NewGame("Bills", "Chiefs", kickoff), 10, 27)
	g2 := testutil.CompleteGame(testutil.NewGame("Jets", "Dolphins", kickoff.Add(time.Hour)), 21, 14)

	provider := &testutil.ScriptedProvider{
		WeeksByNumber: map[int]domain.Week{1: testutil.NewWeek(1, g1, g2)},
	}
	trk := New(Options{Provider: provider, SeasonWeeks: 1, Now: testutil.NowAt(now)})
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	trk.predictions = domain.Predictions{
		"week1": {g1.ID: "Chiefs", g2.ID: "Dolphins"},
	}

	view, err := trk.WeekView(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Stats.Correct != 1 || view.Stats.Accuracy != 50 {
		t.Fatalf("unexpected stats: %+v", view.Stats)
	}
	if view.Grade == nil {
		t.Fatalf("completed week must carry a grade")
	}
	if view.Grade.Letter != "D" {
		t.Fatalf("50%% accuracy grades D, got %q", view.Grade.Letter)
	}
	if view.Grade.Summary != "You correctly predicted 1 out of 2 games." {
		t.Fatalf("unexpected summary: %q", view.Grade.Summary)
	}

	correct := view.Days[0].Games[0]
	if correct.PickStatus != domain.PickCorrect {
		t.Fatalf("chiefs pick should grade correct, got %q", correct.PickStatus)
	}
	wrong := view.Days[0].Games[1]
	if wrong.PickStatus != domain.PickIncorrect {
		t.Fatalf("dolphins pick should grade incorrect, got %q", wrong.PickStatus)
	}
}

func TestWeeksMarksCurrent(t *testing.T) {
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	trk := newTestTracker(provider, nil)
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	trk.currentWeek = 2

	summaries := trk.Weeks()
	for _, s := range summaries {
		if s.Current != (s.Number == 2) {
			t.Fatalf("current flag wrong on %+v", s)
		}
		if s.Name != domain.WeekName(s.Number) {
			t.Fatalf("unexpected name %q for week %d", s.Name, s.Number)
		}
	}
}

func TestWeekViewUnknownWeek(t *testing.T) {
	trk := New(Options{Provider: &testutil.ScriptedProvider{}})
	if _, err := trk.WeekView(3); !errors.Is(err, ErrWeekNotFound) {
		t.Fatalf("expected ErrWeekNotFound, got %v", err)
	}
}
