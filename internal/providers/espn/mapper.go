package espn

import (
	"fmt"
	"strconv"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/teams"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/timeutil"
)

func mapWeek(number int, events []eventResponse) (domain.Week, error) {
	week := domain.Week{
		Number: number,
		Name:   domain.WeekName(number),
		Games:  make([]domain.Game, 0, len(events)),
	}
	for _, event := range events {
		game, err := mapEvent(event)
		if err != nil {
			return domain.Week{}, err
		}
		week.Games = append(week.Games, game)
	}
	return week, nil
}

func mapEvent(event eventResponse) (domain.Game, error) {
	if len(event.Competitions) == 0 {
		return domain.Game{}, fmt.Errorf("espn: event %s has no competitions", event.ID)
	}
	competition := event.Competitions[0]

	home, away, err := splitCompetitors(event.ID, competition.Competitors)
	if err != nil {
		return domain.Game{}, err
	}

	homeName := teams.Resolve(home.Team.Abbreviation, home.Team.DisplayName)
	awayName := teams.Resolve(away.Team.Abbreviation, away.Team.DisplayName)

	kickoff, err := timeutil.ParseKickoff(event.Date)
	if err != nil {
		return domain.Game{}, fmt.Errorf("espn: event %s kickoff %q: %w", event.ID, event.Date, err)
	}

	game := domain.Game{
		ID:        domain.GameID(awayName, homeName),
		Away:      awayName,
		Home:      homeName,
		Day:       timeutil.DayName(kickoff),
		Time:      timeutil.KickoffDisplay(kickoff),
		Kickoff:   kickoff,
		Status:    competition.Status.Type.Description,
		Completed: competition.Status.Type.Completed,
	}

	if game.Completed {
		homeScore := parseScore(home.Score)
		awayScore := parseScore(away.Score)
		switch {
		case homeScore > awayScore:
			game.Winner = homeName
		case awayScore > homeScore:
			game.Winner = awayName
		}
		// Tie games keep an empty winner but still record the score line.
		game.FinalScore = domain.FormatFinalScore(awayName, awayScore, homeScore, homeName)
	}

	return game, nil
}

func splitCompetitors(eventID string, competitors []competitorResponse) (home, away competitorResponse, err error) {
	var haveHome, haveAway bool
	for _, c := range competitors {
		switch c.HomeAway {
		case "home":
			home, haveHome = c, true
		case "away":
			away, haveAway = c, true
		}
	}
	if !haveHome || !haveAway {
		return home, away, fmt.Errorf("espn: event %s missing home/away competitor", eventID)
	}
	return home, away, nil
}

func parseScore(raw string) int {
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return score
}
