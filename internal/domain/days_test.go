package domain

import (
	"testing"
	"time"
)

func TestGroupByDayOrdersDaysAndGames(t *testing.T) {
	sunday := time.Date(2025, 9, 14, 17, 0, 0, 0, time.UTC)
	thursday := time.Date(2025, 9, 11, 0, 15, 0, 0, time.UTC)
	monday := time.Date(2025, 9, 15, 0, 15, 0, 0, time.UTC)

	games := []Game{
		{ID: "a-b", Day: "Sunday", Kickoff: sunday.Add(3 * time.Hour)},
		{ID: "c-d", Day: "Monday", Kickoff: monday},
		{ID: "e-f", Day: "Sunday", Kickoff: sunday},
		{ID: "g-h", Day: "Thursday", Kickoff: thursday},
	}

	sections := GroupByDay(games)
	if len(sections) != 3 {
		t.Fatalf("expected 3 day sections, got %d", len(sections))
	}

	wantDays := []string{"Thursday", "Sunday", "Monday"}
	for i, want := range wantDays {
		if sections[i].Day != want {
			t.Fatalf("day order: expected %v, got %s at %d", wantDays, sections[i].Day, i)
		}
	}

	sundayGames := sections[1].Games
	if sundayGames[0].ID != "e-f" || sundayGames[1].ID != "a-b" {
		t.Fatalf("games within a day must sort by kickoff, got %s then %s", sundayGames[0].ID, sundayGames[1].ID)
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	if sections := GroupByDay(nil); len(sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(sections))
	}
}
