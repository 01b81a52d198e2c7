package tracker

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/store"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/testutil"
)

var trackerNow = time.Date(2025, 9, 14, 18, 0, 0, 0, time.UTC)

func newTestTracker(provider *testutil.ScriptedProvider, st store.Store) *Tracker {
	if st == nil {
		st = store.NewMemoryStore()
	}
	return New(Options{
		Provider:    provider,
		Store:       st,
		SeasonWeeks: 6,
		Now:         testutil.NowAt(trackerNow),
	})
}

func seasonWeeks() map[int]domain.Week {
	weeks := make(map[int]domain.Week)
	for n := 1; n <= 6; n++ {
		kickoff := trackerNow.Add(time.Duration(n-2) * 7 * 24 * time.Hour)
		weeks[n] = testutil.NewWeek(n,
			testutil.NewGame("Bills", "Chiefs", kickoff),
			testutil.NewGame("Jets", "Dolphins", kickoff.Add(3*time.Hour)),
		)
	}
	return weeks
}

func TestFetchFullScheduleSkipsUnpublishedWeeks(t *testing.T) {
	weeks := seasonWeeks()
	delete(weeks, 5) // upstream has not published week 5
	provider := &testutil.ScriptedProvider{WeeksByNumber: weeks}
	trk := newTestTracker(provider, nil)

	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(provider.WeekCalls, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("expected sequential attempts for every week, got %v", provider.WeekCalls)
	}

	summaries := trk.Weeks()
	numbers := make([]int, 0, len(summaries))
	for _, s := range summaries {
		numbers = append(numbers, s.Number)
	}
	if !reflect.DeepEqual(numbers, []int{1, 2, 3, 4, 6}) {
		t.Fatalf("week 5 must be absent, not an error: %v", numbers)
	}

	if trk.DisplayWeek() != 1 {
		t.Fatalf("lowest available week must become displayed, got %d", trk.DisplayWeek())
	}
}

func TestFetchFullScheduleAbortsOnUnexpectedError(t *testing.T) {
	weeks := seasonWeeks()
	provider := &testutil.ScriptedProvider{
		WeeksByNumber: weeks,
		WeekErrors:    map[int]error{3: errors.New("connection reset")},
	}
	st := store.NewMemoryStore()
	trk := newTestTracker(provider, st)

	err := trk.FetchFullSchedule(context.Background())
	if err == nil {
		t.Fatalf("expected the loop error to surface")
	}

	if !reflect.DeepEqual(provider.WeekCalls, []int{1, 2, 3}) {
		t.Fatalf("no further weeks may be requested after the abort, got %v", provider.WeekCalls)
	}

	// Weeks fetched before the abort stay cached and persisted.
	if len(trk.Weeks()) != 2 {
		t.Fatalf("expected weeks 1-2 cached, got %v", trk.Weeks())
	}
	persisted, _ := st.LoadSchedule(context.Background())
	if len(persisted) != 2 {
		t.Fatalf("partial schedule must still persist, got %d weeks", len(persisted))
	}
}

func TestFetchFullSchedulePersistsCache(t *testing.T) {
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	st := store.NewMemoryStore()
	trk := newTestTracker(provider, st)

	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	persisted, err := st.LoadSchedule(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(persisted) != 6 {
		t.Fatalf("expected all 6 weeks persisted, got %d", len(persisted))
	}
}

func TestRefreshCurrentSelectsAndMerges(t *testing.T) {
	weeks := seasonWeeks()
	provider := &testutil.ScriptedProvider{WeeksByNumber: weeks}
	trk := newTestTracker(provider, nil)
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	// Week 2's first game goes final upstream.
	updated := weeks[2]
	games := make([]domain.Game, len(updated.Games))
	copy(games, updated.Games)
	games[0] = testutil.CompleteGame(games[0], 24, 31)
	provider.WeeksByNumber[2] = domain.Week{Number: 2, Name: updated.Name, Games: games}
	provider.Current = domain.Scoreboard{WeekNumber: 2, Games: games}

	if err := trk.RefreshCurrent(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trk.CurrentWeek() != 2 {
		t.Fatalf("current week pointer must record the upstream number, got %d", trk.CurrentWeek())
	}
	if trk.DisplayWeek() != 2 {
		t.Fatalf("current week must be selected for display, got %d", trk.DisplayWeek())
	}

	view, err := trk.WeekView(2)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if view.Stats.Completed != 1 {
		t.Fatalf("merge must land the final result: %+v", view.Stats)
	}
}

func TestRefreshCurrentFailureFallsBackToFirstCachedWeek(t *testing.T) {
	provider := &testutil.ScriptedProvider{
		WeeksByNumber: seasonWeeks(),
		CurrentErr:    errors.New("scoreboard down"),
	}
	trk := newTestTracker(provider, nil)

	// Simulate hydrated cache without a display selection.
	trk.schedule = domain.Schedule{
		domain.WeekKey(3): testutil.NewWeek(3, testutil.NewGame("Bills", "Chiefs", trackerNow.Add(time.Hour))),
		domain.WeekKey(4): testutil.NewWeek(4, testutil.NewGame("Jets", "Dolphins", trackerNow.Add(8*24*time.Hour))),
	}

	err := trk.RefreshCurrent(context.Background())
	if err == nil {
		t.Fatalf("live discovery failures must surface")
	}
	if errors.Is(err, ErrNoSchedule) {
		t.Fatalf("cache exists, must not report empty state: %v", err)
	}
	if trk.DisplayWeek() != 3 {
		t.Fatalf("expected fallback to first cached week, got %d", trk.DisplayWeek())
	}
}

func TestRefreshCurrentFailureWithoutCacheIsEmptyState(t *testing.T) {
	provider := &testutil.ScriptedProvider{CurrentErr: errors.New("scoreboard down")}
	trk := newTestTracker(provider, nil)

	err := trk.RefreshCurrent(context.Background())
	if !errors.Is(err, ErrNoSchedule) {
		t.Fatalf("expected ErrNoSchedule in the error chain, got %v", err)
	}
	if trk.DisplayWeek() != 0 {
		t.Fatalf("nothing to display, got week %d", trk.DisplayWeek())
	}
}

func TestRefreshWeekNoOpWhenNotCached(t *testing.T) {
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	st := store.NewMemoryStore()
	trk := newTestTracker(provider, st)

	trk.RefreshWeek(context.Background(), 4)

	if trk.HasSchedule() {
		t.Fatalf("refresh of an uncached week must not create it")
	}
	persisted, _ := st.LoadSchedule(context.Background())
	if len(persisted) != 0 {
		t.Fatalf("no merge happened, nothing to persist")
	}
}

func TestRefreshWeekSwallowsFetchErrors(t *testing.T) {
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	trk := newTestTracker(provider, nil)
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	provider.WeekErrors = map[int]error{2: errors.New("boom")}

	before, _ := trk.WeekView(2)
	trk.RefreshWeek(context.Background(), 2) // must not panic or propagate
	after, _ := trk.WeekView(2)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("failed refresh must leave cached data untouched")
	}
}

func TestRefreshWeekPersistsOnlyOnChange(t *testing.T) {
	weeks := seasonWeeks()
	provider := &testutil.ScriptedProvider{WeeksByNumber: weeks}
	st := store.NewMemoryStore()
	trk := newTestTracker(provider, st)
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	// Identical refetch: no change, cache already persisted by full fetch.
	trk.RefreshWeek(context.Background(), 1)

	// Now the first game goes live.
	games := make([]domain.Game, len(weeks[1].Games))
	copy(games, weeks[1].Games)
	games[0].Status = "2nd Quarter"
	provider.WeeksByNumber[1] = domain.Week{Number: 1, Name: weeks[1].Name, Games: games}

	trk.RefreshWeek(context.Background(), 1)

	persisted, _ := st.LoadSchedule(context.Background())
	week, _ := persisted.Week(1)
	if week.Games[0].Status != "2nd Quarter" {
		t.Fatalf("merged change must persist, got %+v", week.Games[0])
	}
}

func TestHydratePrePopulatesFromStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	st.SaveSchedule(ctx, domain.Schedule{
		domain.WeekKey(7): testutil.NewWeek(7, testutil.NewGame("Bills", "Chiefs", trackerNow.Add(time.Hour))),
	})
	st.SavePredictions(ctx, domain.Predictions{"week7": {"bills-chiefs": "Bills"}})

	trk := newTestTracker(&testutil.ScriptedProvider{}, st)
	if err := trk.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}

	if trk.DisplayWeek() != 7 {
		t.Fatalf("hydration must select the first cached week, got %d", trk.DisplayWeek())
	}
	view, err := trk.WeekView(7)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if view.Days[0].Games[0].Prediction != "Bills" {
		t.Fatalf("hydrated predictions must apply: %+v", view.Days[0].Games[0])
	}
}

func TestPredictHappyPathPersists(t *testing.T) {
	ctx := context.Background()
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	st := store.NewMemoryStore()
	trk := newTestTracker(provider, st)
	if err := trk.FetchFullSchedule(ctx); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	// Week 3 kicks off next week; still open.
	if err := trk.Predict(ctx, 3, "bills-chiefs", "Bills"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := trk.Predict(ctx, 3, "bills-chiefs", "Chiefs"); err != nil {
		t.Fatalf("re-selection must overwrite: %v", err)
	}

	persisted, _ := st.LoadPredictions(ctx)
	if persisted["week3"]["bills-chiefs"] != "Chiefs" {
		t.Fatalf("prediction must persist, got %+v", persisted)
	}
}

func TestPredictRejectsStartedGame(t *testing.T) {
	ctx := context.Background()
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	trk := newTestTracker(provider, nil)
	if err := trk.FetchFullSchedule(ctx); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	// Week 1 kicked off a week ago.
	err := trk.Predict(ctx, 1, "bills-chiefs", "Bills")
	if !errors.Is(err, ErrGameLocked) {
		t.Fatalf("expected ErrGameLocked, got %v", err)
	}
}

func TestPredictValidation(t *testing.T) {
	ctx := context.Background()
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	trk := newTestTracker(provider, nil)
	if err := trk.FetchFullSchedule(ctx); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if err := trk.Predict(ctx, 42, "bills-chiefs", "Bills"); !errors.Is(err, ErrWeekNotFound) {
		t.Fatalf("expected ErrWeekNotFound, got %v", err)
	}
	if err := trk.Predict(ctx, 3, "ravens-steelers", "Ravens"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if err := trk.Predict(ctx, 3, "bills-chiefs", "Packers"); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
}

func TestSelectWeek(t *testing.T) {
	provider := &testutil.ScriptedProvider{WeeksByNumber: seasonWeeks()}
	trk := newTestTracker(provider, nil)
	if err := trk.FetchFullSchedule(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if err := trk.SelectWeek(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trk.DisplayWeek() != 4 {
		t.Fatalf("expected display week 4, got %d", trk.DisplayWeek())
	}
	if err := trk.SelectWeek(42); !errors.Is(err, ErrWeekNotFound) {
		t.Fatalf("expected ErrWeekNotFound, got %v", err)
	}
}
