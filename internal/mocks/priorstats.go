// Package mocks holds small stand-ins for external systems used by tests
// and local development wiring.
package mocks

import "github.com/kpm34/college-football-fantasy-app-sub003/internal/signals"

// PriorStats implements signals.PriorStatsSource from a fixed map.
type PriorStats struct {
	Stats map[string]signals.PriorStats
	Err   error
}

func (m *PriorStats) PriorSeasonStats(season int) (map[string]signals.PriorStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Stats, nil
}
