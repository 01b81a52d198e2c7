package testutil

import (
	"context"
	"fmt"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/providers"
)

// ScriptedProvider serves canned weeks and a canned current scoreboard.
// Weeks absent from the map behave as unpublished. Call counts are tracked
// for assertions.
type ScriptedProvider struct {
	WeeksByNumber map[int]domain.Week
	WeekErrors    map[int]error
	Current       domain.Scoreboard
	CurrentErr    error

	WeekCalls    []int
	CurrentCalls int
}

func (p *ScriptedProvider) FetchWeek(ctx context.Context, week int) (domain.Week, error) {
	p.WeekCalls = append(p.WeekCalls, week)
	if err, ok := p.WeekErrors[week]; ok {
		return domain.Week{}, err
	}
	if w, ok := p.WeeksByNumber[week]; ok {
		return w, nil
	}
	return domain.Week{}, fmt.Errorf("week %d: %w", week, providers.ErrWeekUnavailable)
}

func (p *ScriptedProvider) FetchCurrent(ctx context.Context) (domain.Scoreboard, error) {
	p.CurrentCalls++
	if p.CurrentErr != nil {
		return domain.Scoreboard{}, p.CurrentErr
	}
	return p.Current, nil
}
