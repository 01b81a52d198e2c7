package domain

import "sort"

// DaySection groups a week's games under one calendar day for display.
type DaySection struct {
	Day   string `json:"day"`
	Games []Game `json:"games"`
}

// GroupByDay buckets games by day name. Days are ordered by their earliest
// kickoff and games within a day by kickoff time.
func GroupByDay(games []Game) []DaySection {
	byDay := make(map[string][]Game)
	for _, g := range games {
		byDay[g.Day] = append(byDay[g.Day], g)
	}

	sections := make([]DaySection, 0, len(byDay))
	for day, dayGames := range byDay {
		sort.Slice(dayGames, func(i, j int) bool {
			return dayGames[i].Kickoff.Before(dayGames[j].Kickoff)
		})
		sections = append(sections, DaySection{Day: day, Games: dayGames})
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Games[0].Kickoff.Before(sections[j].Games[0].Kickoff)
	})
	return sections
}
