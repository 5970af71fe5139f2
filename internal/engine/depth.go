package engine

import "github.com/kpm34/college-football-fantasy-app-sub003/internal/models"

// DepthMultiplier maps a player's positional depth rank to the share of the
// starter's opportunity volume that rank typically sees. Rank 1 is always the
// full share.
func DepthMultiplier(pos models.Position, rank int) float64 {
	switch pos {
	case models.QB:
		switch rank {
		case 1:
			return 1.0
		case 2:
			return 0.25
		default:
			return 0.05
		}
	case models.RB:
		switch rank {
		case 1:
			return 1.0
		case 2:
			return 0.65
		case 3:
			return 0.35
		default:
			return 0.15
		}
	case models.WR:
		switch rank {
		case 1:
			return 1.0
		case 2:
			return 0.85
		case 3:
			return 0.60
		case 4:
			return 0.35
		default:
			return 0.15
		}
	case models.TE:
		switch rank {
		case 1:
			return 1.0
		case 2:
			return 0.50
		default:
			return 0.20
		}
	}
	return 1.0
}

// EstimateDepthRank infers a depth rank from a player's most recent known
// fantasy point total. Used when no depth chart entry or stored rank exists;
// every player must end up with some rank.
func EstimateDepthRank(fantasyPoints float64, pos models.Position) int {
	switch pos {
	case models.QB:
		switch {
		case fantasyPoints > 350:
			return 1
		case fantasyPoints > 200:
			return 2
		default:
			return 3
		}
	case models.RB:
		switch {
		case fantasyPoints > 250:
			return 1
		case fantasyPoints > 150:
			return 2
		case fantasyPoints > 80:
			return 3
		default:
			return 4
		}
	case models.WR:
		switch {
		case fantasyPoints > 200:
			return 1
		case fantasyPoints > 140:
			return 2
		case fantasyPoints > 100:
			return 3
		case fantasyPoints > 60:
			return 4
		default:
			return 5
		}
	case models.TE:
		switch {
		case fantasyPoints > 120:
			return 1
		case fantasyPoints > 70:
			return 2
		default:
			return 3
		}
	}
	return 1
}

// EstimateUsageRate derives a base opportunity share from a player's prior
// fantasy point total when the store carries no explicit share.
func EstimateUsageRate(priorPoints float64) float64 {
	if priorPoints <= 0 {
		priorPoints = 100
	}
	return clamp(0.1, 0.8, priorPoints/400)
}
