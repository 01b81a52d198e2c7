package providers

import (
	"context"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

// ScheduleProvider defines how upstream schedule data is fetched and
// normalized into domain weeks.
type ScheduleProvider interface {
	// FetchWeek retrieves one regular-season week. A week the upstream has
	// not published yet surfaces as ErrWeekUnavailable.
	FetchWeek(ctx context.Context, week int) (domain.Week, error)
	// FetchCurrent retrieves the scoreboard the upstream considers current,
	// including the reported week number.
	FetchCurrent(ctx context.Context) (domain.Scoreboard, error)
}
