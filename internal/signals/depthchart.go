package signals

import (
	"encoding/json"
	"fmt"
	"os"
)

// depthChartEntry is one player slot in the depth chart JSON:
// {"Georgia": {"QB": [{"player_name": "...", "pos_rank": 1}, ...], ...}, ...}
type depthChartEntry struct {
	PlayerName string `json:"player_name"`
	PosRank    int    `json:"pos_rank"`
}

// LoadDepthCharts parses a depth chart JSON file into a map of
// name|team keys to positional depth ranks.
func LoadDepthCharts(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var byTeam map[string]map[string][]depthChartEntry
	if err := json.Unmarshal(raw, &byTeam); err != nil {
		return nil, fmt.Errorf("parse depth chart %s: %w", path, err)
	}

	ranks := make(map[string]int)
	for team, positions := range byTeam {
		for _, players := range positions {
			for _, p := range players {
				if p.PlayerName == "" {
					continue
				}
				rank := p.PosRank
				if rank < 1 {
					rank = 1
				}
				ranks[Key(p.PlayerName, team)] = rank
			}
		}
	}

	return ranks, nil
}
