// Package teams maps upstream team abbreviations to the short display
// names used throughout the tracker.
package teams

// names covers the 32 current NFL franchises.
var names = map[string]string{
	"SF":  "49ers",
	"CHI": "Bears",
	"CIN": "Bengals",
	"BUF": "Bills",
	"DEN": "Broncos",
	"CLE": "Browns",
	"TB":  "Buccaneers",
	"ARI": "Cardinals",
	"LAC": "Chargers",
	"KC":  "Chiefs",
	"IND": "Colts",
	"WSH": "Commanders",
	"DAL": "Cowboys",
	"MIA": "Dolphins",
	"PHI": "Eagles",
	"ATL": "Falcons",
	"NYG": "Giants",
	"JAX": "Jaguars",
	"NYJ": "Jets",
	"DET": "Lions",
	"GB":  "Packers",
	"CAR": "Panthers",
	"NE":  "Patriots",
	"LV":  "Raiders",
	"LAR": "Rams",
	"BAL": "Ravens",
	"NO":  "Saints",
	"SEA": "Seahawks",
	"PIT": "Steelers",
	"HOU": "Texans",
	"TEN": "Titans",
	"MIN": "Vikings",
}

// Resolve returns the display name for an abbreviation, falling back to
// the upstream-provided display name for codes outside the known set.
func Resolve(abbreviation, displayName string) string {
	if name, ok := names[abbreviation]; ok {
		return name
	}
	return displayName
}
