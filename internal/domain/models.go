package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Game is the canonical matchup shape tracked by the service. Identity
// fields (ID, Away, Home, Day, Time, Kickoff) are fixed at creation;
// only Status, Completed, Winner and FinalScore change afterwards.
type Game struct {
	ID         string    `json:"id"`
	Away       string    `json:"away"`
	Home       string    `json:"home"`
	Day        string    `json:"day"`
	Time       string    `json:"time"`
	Kickoff    time.Time `json:"kickoff"`
	Status     string    `json:"status"`
	Completed  bool      `json:"completed"`
	Winner     string    `json:"winner,omitempty"`
	FinalScore string    `json:"finalScore,omitempty"`
}

// Week is one scheduling week of games, in upstream fetch order.
type Week struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Games  []Game `json:"games"`
}

// Scoreboard is the payload of the upstream "current" endpoint: the week
// the source currently reports plus that week's games.
type Scoreboard struct {
	WeekNumber int    `json:"weekNumber"`
	Games      []Game `json:"games"`
}

// Schedule maps week keys to weeks. Weeks that never fetched successfully
// are simply absent.
type Schedule map[string]Week

// Predictions maps week key -> game id -> predicted winning team name.
type Predictions map[string]map[string]string

// WeekKey builds the canonical schedule key for a week number.
func WeekKey(number int) string {
	return fmt.Sprintf("week%d", number)
}

// WeekName builds the display label for a week number.
func WeekName(number int) string {
	return fmt.Sprintf("Week %d", number)
}

// Slug lowercases a display name and strips all whitespace.
func Slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// GameID derives the stable join key for a matchup. The same team name
// pair always yields the same id, independent of fetch timing.
func GameID(away, home string) string {
	return Slug(away) + "-" + Slug(home)
}

// Week returns the week stored under the given number, if present.
func (s Schedule) Week(number int) (Week, bool) {
	w, ok := s[WeekKey(number)]
	return w, ok
}

// Weeks returns all known weeks ordered by number.
func (s Schedule) Weeks() []Week {
	weeks := make([]Week, 0, len(s))
	for _, w := range s {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Number < weeks[j].Number
	})
	return weeks
}

// FirstWeek returns the lowest-numbered cached week.
func (s Schedule) FirstWeek() (Week, bool) {
	weeks := s.Weeks()
	if len(weeks) == 0 {
		return Week{}, false
	}
	return weeks[0], true
}

// Clone deep-copies the schedule so callers can hand out snapshots
// without aliasing the cached game slices.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for key, w := range s {
		games := make([]Game, len(w.Games))
		copy(games, w.Games)
		w.Games = games
		out[key] = w
	}
	return out
}

// ForWeek returns the prediction map for a week key, never nil.
func (p Predictions) ForWeek(key string) map[string]string {
	if p == nil {
		return map[string]string{}
	}
	picks, ok := p[key]
	if !ok {
		return map[string]string{}
	}
	return picks
}

// Set records a prediction, overwriting any previous pick for the game.
func (p Predictions) Set(key, gameID, team string) {
	picks, ok := p[key]
	if !ok {
		picks = make(map[string]string)
		p[key] = picks
	}
	picks[gameID] = team
}

// FormatFinalScore renders the completed-game score line.
func FormatFinalScore(away string, awayScore int, homeScore int, home string) string {
	return fmt.Sprintf("%s %d - %d %s", away, awayScore, homeScore, home)
}
