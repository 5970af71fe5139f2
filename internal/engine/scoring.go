package engine

import (
	"math"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// Standard PPR scoring weights
const (
	ptsPerPassYard  = 0.04
	ptsPerPassTD    = 4.0
	ptsPerInt       = -2.0
	ptsPerRushYard  = 0.1
	ptsPerRushTD    = 6.0
	ptsPerRecYard   = 0.1
	ptsPerRecTD     = 6.0
	ptsPerReception = 1.0
)

// Score applies PPR scoring to a statline, rounded to one decimal.
// Deterministic: the same statline always scores identically.
func Score(stat models.StatLine) float64 {
	pts := float64(stat.PassYards)*ptsPerPassYard +
		float64(stat.PassTDs)*ptsPerPassTD +
		float64(stat.Interceptions)*ptsPerInt +
		float64(stat.RushYards)*ptsPerRushYard +
		float64(stat.RushTDs)*ptsPerRushTD +
		float64(stat.RecYards)*ptsPerRecYard +
		float64(stat.RecTDs)*ptsPerRecTD +
		float64(stat.Receptions)*ptsPerReception

	return math.Round(pts*10) / 10
}
