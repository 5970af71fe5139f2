package engine

import (
	"math"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// League-wide play-calling split
const (
	passRate = 0.52
	runRate  = 1 - passRate
)

func roundStat(v float64) int {
	if v < 0 {
		// The formulas cannot produce negatives from valid inputs, clamp anyway
		return 0
	}
	return int(math.Round(v))
}

// ComputeStatline synthesizes a season box score from team pace, usage, and
// the talent multiplier. Positions only ever fill their own columns: a WR's
// passing and rushing stats stay zero.
func ComputeStatline(ctx models.PlayerContext) models.StatLine {
	pace := ctx.Pace
	games := float64(ctx.Games)
	usage := ctx.UsageRate * DepthMultiplier(ctx.Pos, ctx.DepthRank)
	talent := ctx.TalentMultiplier

	switch ctx.Pos {
	case models.QB:
		passAtt := pace * passRate * 1.0 * games * talent
		passYds := passAtt * 7.5 * talent
		passTD := passAtt * 0.05 * talent
		// Interception volume tracks attempts, not talent
		ints := passAtt * 0.025
		rushAtt := pace * runRate * 0.10 * games
		rushYds := rushAtt * 5.0 * talent
		rushTD := rushAtt * 0.02 * talent

		return models.StatLine{
			PassYards:     roundStat(passYds),
			PassTDs:       roundStat(passTD),
			Interceptions: roundStat(ints),
			RushYards:     roundStat(rushYds),
			RushTDs:       roundStat(rushTD),
		}

	case models.RB:
		rushAtt := pace * runRate * usage * games * talent
		rushYds := rushAtt * 4.8 * talent
		rushTD := rushAtt * 0.03 * talent
		targets := pace * passRate * (usage * 0.5) * games * talent
		rec := targets * 0.65
		recYds := rec * 7.5 * talent
		recTD := targets * 0.03 * talent

		return models.StatLine{
			RushYards:  roundStat(rushYds),
			RushTDs:    roundStat(rushTD),
			Receptions: roundStat(rec),
			RecYards:   roundStat(recYds),
			RecTDs:     roundStat(recTD),
		}
	}

	// WR / TE
	targets := pace * passRate * usage * games * talent
	catchRate := 0.65
	ypr := 12.0 * talent
	tdRate := 0.05
	if ctx.Pos == models.TE {
		catchRate = 0.62
		ypr = 10.0 * talent
		tdRate = 0.04
	}
	rec := targets * catchRate
	recYds := rec * ypr
	recTD := targets * tdRate * talent

	return models.StatLine{
		Receptions: roundStat(rec),
		RecYards:   roundStat(recYds),
		RecTDs:     roundStat(recTD),
	}
}
