package tracker

import (
	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

// GameView is one game plus the user's pick and its display status.
type GameView struct {
	domain.Game
	Prediction string             `json:"prediction,omitempty"`
	PickStatus domain.PickOutcome `json:"pickStatus"`
	Started    bool               `json:"started"`
	Live       bool               `json:"live"`
}

// DayView groups game views under one calendar day.
type DayView struct {
	Day   string     `json:"day"`
	Games []GameView `json:"games"`
}

// WeekView is the full render payload for one week.
type WeekView struct {
	Number  int              `json:"number"`
	Name    string           `json:"name"`
	Current bool             `json:"current"`
	Days    []DayView        `json:"days"`
	Stats   domain.WeekStats `json:"stats"`
	Grade   *domain.Grade    `json:"grade,omitempty"`
}

// WeekSummary is one entry of the week selector.
type WeekSummary struct {
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

// Weeks lists all cached weeks ordered by number.
func (t *Tracker) Weeks() []WeekSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	weeks := t.schedule.Weeks()
	summaries := make([]WeekSummary, 0, len(weeks))
	for _, w := range weeks {
		summaries = append(summaries, WeekSummary{
			Number:  w.Number,
			Name:    w.Name,
			Current: w.Number == t.currentWeek,
		})
	}
	return summaries
}

// WeekView builds the render payload for a cached week: games grouped by
// day in kickoff order, each with the user's pick and its status, plus the
// week's stats and, once every game completed, the grade.
func (t *Tracker) WeekView(week int) (WeekView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := domain.WeekKey(week)
	cached, ok := t.schedule[key]
	if !ok {
		return WeekView{}, ErrWeekNotFound
	}

	now := t.now()
	picks := t.predictions.ForWeek(key)

	sections := domain.GroupByDay(cached.Games)
	days := make([]DayView, 0, len(sections))
	for _, section := range sections {
		games := make([]GameView, 0, len(section.Games))
		for _, g := range section.Games {
			state := domain.ClassifyGame(g, now)
			games = append(games, GameView{
				Game:       g,
				Prediction: picks[g.ID],
				PickStatus: domain.PickStatus(g, picks[g.ID], now),
				Started:    state.Started,
				Live:       state.Live,
			})
		}
		days = append(days, DayView{Day: section.Day, Games: games})
	}

	view := WeekView{
		Number:  cached.Number,
		Name:    cached.Name,
		Current: cached.Number == t.currentWeek,
		Days:    days,
		Stats:   domain.ComputeStats(cached, picks),
	}
	if grade, ok := domain.GradeWeek(view.Stats); ok {
		view.Grade = &grade
	}
	return view, nil
}
