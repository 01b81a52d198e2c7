package timeutil

import "time"

// ReferenceTimezone is the fixed timezone used for all derived day and
// kickoff display strings, regardless of where the service runs.
const ReferenceTimezone = "Europe/Berlin"

// Upstream kickoff timestamp layouts. The source usually omits seconds.
const (
	kickoffLayoutShort = "2006-01-02T15:04Z"
	kickoffLayout      = time.RFC3339
)

const kickoffDisplayLayout = "3:04 PM MST"

var referenceLocation = loadReference()

func loadReference() *time.Location {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ReferenceLocation returns the fixed display location.
func ReferenceLocation() *time.Location {
	return referenceLocation
}

// ParseKickoff parses an upstream kickoff timestamp, accepting both full
// RFC3339 and the seconds-less variant the scoreboard feed emits.
func ParseKickoff(value string) (time.Time, error) {
	if t, err := time.Parse(kickoffLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(kickoffLayoutShort, value)
}

// DayName formats the kickoff's calendar day name in the reference timezone.
func DayName(t time.Time) string {
	return t.In(referenceLocation).Weekday().String()
}

// KickoffDisplay formats the kickoff clock time in the reference timezone.
func KickoffDisplay(t time.Time) string {
	return t.In(referenceLocation).Format(kickoffDisplayLayout)
}
