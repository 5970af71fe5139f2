// Package engine implements the talent-adjusted projection math: the talent
// multiplier, depth-chart usage resolution, statline synthesis, fantasy
// scoring, and the batch runner that ties them together.
package engine

import "github.com/kpm34/college-football-fantasy-app-sub003/internal/models"

// Multiplier bounds. Each component is additive around a neutral 1.0 and the
// final value is clamped here.
const (
	MinTalentMultiplier = 0.3
	MaxTalentMultiplier = 2.0
)

// positionBenchmarks are solid per-game fantasy point totals used to grade
// prior-season production.
var positionBenchmarks = map[models.Position]float64{
	models.QB: 20,
	models.RB: 15,
	models.WR: 12,
	models.TE: 10,
}

func clamp(min, max, v float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// TalentMultiplier reduces a talent profile to a single bounded scalar in
// [0.3, 2.0]. Absent fields contribute nothing, so an empty profile yields
// exactly 1.0. Each present signal is applied exactly once; the components
// are independent and additive.
func TalentMultiplier(talent models.TalentProfile, pos models.Position) float64 {
	m := 1.0

	// Overall ability rating, normalized so 70 is neutral and 99 maxes out
	if talent.EAOverall != nil {
		eaScore := (float64(*talent.EAOverall) - 70) / 30
		m += clamp(-0.15, 0.15, eaScore*0.15)
	}

	// Speed/acceleration bonus for RB and WR only, and only when both are known
	if (pos == models.RB || pos == models.WR) && talent.EASpeed != nil && talent.EAAcceleration != nil {
		athleticism := (float64(*talent.EASpeed+*talent.EAAcceleration)/2 - 80) / 20
		m += clamp(-0.05, 0.05, athleticism*0.05)
	}

	// Draft capital score is already in [0,1], so this only ever boosts
	if talent.DraftCapitalScore != nil {
		m += *talent.DraftCapitalScore * 0.20
	}

	// Prior-season production, graded against the position benchmark. A thin
	// sample (six games or fewer) is ignored.
	if talent.PrevFantasyPoints != nil && talent.PrevGamesPlayed != nil && *talent.PrevGamesPlayed > 6 {
		perGame := *talent.PrevFantasyPoints / float64(*talent.PrevGamesPlayed)
		benchmark := positionBenchmarks[pos]
		m += clamp(-0.15, 0.25, (perGame-benchmark)/benchmark*0.25)
	}

	// Supporting cast quality, 50 is neutral
	if talent.SupportingCastRating != nil {
		support := (*talent.SupportingCastRating - 50) / 50
		m += clamp(-0.10, 0.15, support*0.15)
	}

	// Offensive line matters for the run game and pocket: RB and QB only
	if (pos == models.RB || pos == models.QB) && talent.OffensiveLineGrade != nil {
		oline := (*talent.OffensiveLineGrade - 50) / 50
		m += clamp(-0.10, 0.10, oline*0.10)
	}

	// Expert sentiment is bounded to [-1,1] at the source
	if talent.ExpertSentiment != nil {
		m += *talent.ExpertSentiment * 0.10
	}

	// Uncertain depth-chart standing is a penalty, locked starters lose nothing
	if talent.DepthChartCertainty != nil {
		m += (1 - *talent.DepthChartCertainty) * -0.15
	}

	if talent.InjuryConcernLevel != nil {
		m += *talent.InjuryConcernLevel * -0.20
	}

	// Coaching change impact is pre-bounded to ±0.5 and applied directly
	if talent.CoachingChangeImpact != nil {
		m += *talent.CoachingChangeImpact
	}

	return clamp(MinTalentMultiplier, MaxTalentMultiplier, m)
}
