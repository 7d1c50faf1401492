package builder

import (
	"fmt"
)

const (
	Home = "HOME"
	Away = "AWAY"
)

// TeamAliases maps team codes used in descriptions to the codes used in the
// offense and defense columns.
var TeamAliases = map[string]string{
	"ARZ": "ARI",
	"ATL": "ATL",
	"BLT": "BAL",
	"BUF": "BUF",
	"CAR": "CAR",
	"CHI": "CHI",
	"CIN": "CIN",
	"CLV": "CLE",
	"DAL": "DAL",
	"DEN": "DEN",
	"DET": "DET",
	"GB":  "GB",
	"HST": "HOU",
	"IND": "IND",
	"JAX": "JAC",
	"KC":  "KC",
	"MIA": "MIA",
	"MIN": "MIN",
	"NE":  "NE",
	"NO":  "NO",
	"NYG": "NYG",
	"NYJ": "NYJ",
	"OAK": "OAK",
	"PHI": "PHI",
	"PIT": "PIT",
	"SD":  "SD",
	"SEA": "SEA",
	"SF":  "SF",
	"SL":  "STL",
	"TB":  "TB",
	"TEN": "TEN",
	"WAS": "WAS",
}

// MergeAliases returns the default aliases overlaid with extra.
func MergeAliases(extra map[string]string) map[string]string {
	merged := make(map[string]string, len(TeamAliases)+len(extra))
	for k, v := range TeamAliases {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// MatchTeam reports whether code names the home or the away team. An exact
// match wins over an alias.
func MatchTeam(code, home, away string, aliases map[string]string) (string, error) {
	switch code {
	case home:
		return Home, nil
	case away:
		return Away, nil
	}

	if fixed, ok := aliases[code]; ok {
		switch fixed {
		case home:
			return Home, nil
		case away:
			return Away, nil
		}
	}
	return "", fmt.Errorf("unable to match team name: %v (%v, %v)", code, home, away)
}
