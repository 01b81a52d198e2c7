package domain

import (
	"strings"
	"time"
)

// startedStatuses are upstream descriptions that mean kickoff has happened,
// matched case-insensitively.
var startedStatuses = []string{
	"In Progress",
	"Halftime",
	"1st Quarter",
	"2nd Quarter",
	"3rd Quarter",
	"4th Quarter",
	"Overtime",
	"Final",
	"Final/OT",
	"Final/2OT",
}

// liveMarkers flag an in-progress game. Matched case-sensitively against
// the upstream-formatted description.
var liveMarkers = []string{"Quarter", "Halftime", "Overtime", "In Progress"}

// GameState is the classifier output for a single game.
type GameState struct {
	Started   bool
	Live      bool
	Completed bool
}

// ClassifyGame derives lifecycle booleans for a game at the given instant.
// Completed comes straight from the upstream flag. A game also counts as
// started once its kickoff is strictly in the past; no pre-game buffer is
// applied.
func ClassifyGame(g Game, now time.Time) GameState {
	return GameState{
		Started:   gameStarted(g, now),
		Live:      gameLive(g.Status),
		Completed: g.Completed,
	}
}

func gameStarted(g Game, now time.Time) bool {
	if g.Completed {
		return true
	}
	lower := strings.ToLower(g.Status)
	for _, status := range startedStatuses {
		if strings.Contains(lower, strings.ToLower(status)) {
			return true
		}
	}
	return g.Kickoff.Before(now)
}

func gameLive(status string) bool {
	for _, marker := range liveMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}
