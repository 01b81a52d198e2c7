package espn

const (
	// ProviderName identifies this upstream in logs and metrics.
	ProviderName = "espn"

	defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

	// seasonTypeRegular selects regular-season scoreboards.
	seasonTypeRegular = "2"

	defaultTimeout = 15 // seconds
)
