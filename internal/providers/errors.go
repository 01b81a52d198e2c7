package providers

import "errors"

// ErrWeekUnavailable marks a week the upstream has not published; the
// full-schedule fetch skips it and moves on.
var ErrWeekUnavailable = errors.New("week unavailable")

// ErrNoGames marks a current-scoreboard response without any games.
var ErrNoGames = errors.New("no games found")
