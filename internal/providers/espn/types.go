package espn

// Wire shapes for the ESPN site API scoreboard payload. Only the fields
// the mapper reads are declared.

type scoreboardResponse struct {
	Week   weekResponse    `json:"week"`
	Events []eventResponse `json:"events"`
}

type weekResponse struct {
	Number int `json:"number"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
