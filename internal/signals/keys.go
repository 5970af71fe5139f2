// Package signals loads the per-player talent signal sources (ability
// ratings, draft capital, depth charts, narrative sentiment, prior-season
// production) and aggregates them into talent profiles.
//
// Every source is independently keyed by lowercase(name)+"|"+lowercase(team).
// A miss on one source leaves that profile field absent; a missing source
// file degrades to absent fields for every player and never fails a run.
package signals

import "strings"

// Key normalizes the (name, team) pair every signal source is keyed by.
func Key(name, team string) string {
	return strings.ToLower(name) + "|" + strings.ToLower(team)
}

func clampf(min, max, v float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
