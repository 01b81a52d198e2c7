package testutil

import "time"

// NowAt pins the tracker's injected clock to a fixed instant so kickoff
// comparisons in tests are deterministic.
func NowAt(instant time.Time) func() time.Time {
	return func() time.Time {
		return instant
	}
}

// MustParseRFC3339 parses a kickoff timestamp for fixtures; bad input is a
// test-authoring bug, so it panics.
func MustParseRFC3339(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("testutil: bad RFC3339 timestamp " + value + ": " + err.Error())
	}
	return parsed
}
