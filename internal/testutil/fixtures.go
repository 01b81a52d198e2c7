package testutil

import (
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

// NewGame builds a scheduled game fixture for the given matchup.
func NewGame(away, home string, kickoff time.Time) domain.Game {
	return domain.Game{
		ID:      domain.GameID(away, home),
		Away:    away,
		Home:    home,
		Day:     kickoff.Weekday().String(),
		Time:    kickoff.Format("3:04 PM MST"),
		Kickoff: kickoff,
		Status:  "Scheduled",
	}
}

// CompleteGame marks a game fixture final with the given score.
func CompleteGame(g domain.Game, awayScore, homeScore int) domain.Game {
	g.Status = "Final"
	g.Completed = true
	switch {
	case homeScore > awayScore:
		g.Winner = g.Home
	case awayScore > homeScore:
		g.Winner = g.Away
	}
	g.FinalScore = domain.FormatFinalScore(g.Away, awayScore, homeScore, g.Home)
	return g
}

// NewWeek builds a week fixture from games.
func NewWeek(number int, games ...domain.Game) domain.Week {
	return domain.Week{
		Number: number,
		Name:   domain.WeekName(number),
		Games:  games,
	}
}
