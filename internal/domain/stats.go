package domain

import (
	"fmt"
	"math"
	"time"
)

// PickOutcome is the display status of a single game's prediction.
type PickOutcome string

const (
	PickCorrect   PickOutcome = "correct"
	PickIncorrect PickOutcome = "incorrect"
	PickLocked    PickOutcome = "locked"
	PickPending   PickOutcome = "pending"
)

// WeekStats summarizes prediction performance for one week.
// Accuracy is a rounded percentage of correct picks among completed games.
type WeekStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Correct   int `json:"correct"`
	Accuracy  int `json:"accuracy"`
}

// Grade is the letter score for a fully completed week.
type Grade struct {
	Letter  string `json:"letter"`
	Message string `json:"message"`
	Summary string `json:"summary"`
}

// ComputeStats tallies completed and correctly predicted games for a week.
// A pick counts as correct only when the game has a non-empty winner that
// matches it by name; a tie never credits a pick.
func ComputeStats(week Week, picks map[string]string) WeekStats {
	stats := WeekStats{Total: len(week.Games)}
	for _, g := range week.Games {
		if !g.Completed {
			continue
		}
		stats.Completed++
		if pick, ok := picks[g.ID]; ok && g.Winner != "" && pick == g.Winner {
			stats.Correct++
		}
	}
	if stats.Completed > 0 {
		stats.Accuracy = int(math.Round(float64(stats.Correct) / float64(stats.Completed) * 100))
	}
	return stats
}

// GradeWeek produces the letter grade for a week. A grade exists only once
// every game in the week is completed; until then the second return is
// false and no grade is emitted.
func GradeWeek(stats WeekStats) (Grade, bool) {
	if stats.Completed != stats.Total {
		return Grade{}, false
	}

	accuracy := 0.0
	if stats.Completed > 0 {
		accuracy = float64(stats.Correct) / float64(stats.Completed)
	}

	var letter, message string
	switch {
	case accuracy >= 0.9:
		letter, message = "A+", "Exceptional!"
	case accuracy >= 0.8:
		letter, message = "A", "Excellent!"
	case accuracy >= 0.7:
		letter, message = "B", "Great job!"
	case accuracy >= 0.6:
		letter, message = "C", "Not bad!"
	case accuracy >= 0.5:
		letter, message = "D", "Could be better."
	default:
		letter, message = "F", "Back to the drawing board!"
	}

	return Grade{
		Letter:  letter,
		Message: message,
		Summary: fmt.Sprintf("You correctly predicted %d out of %d games.", stats.Correct, stats.Completed),
	}, true
}

// PickStatus derives the display status for one game given the user's pick
// (empty string when none). A completed game with no pick, no winner, or a
// wrong pick reads incorrect; a tie with a pick present is incorrect, not
// neutral.
func PickStatus(g Game, pick string, now time.Time) PickOutcome {
	state := ClassifyGame(g, now)
	switch {
	case state.Completed && pick != "" && g.Winner != "" && pick == g.Winner:
		return PickCorrect
	case state.Completed:
		return PickIncorrect
	case state.Started:
		return PickLocked
	default:
		return PickPending
	}
}
