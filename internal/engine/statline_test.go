package engine

import (
	"testing"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

func qbContext(pace float64, games int, talent float64) models.PlayerContext {
	return models.PlayerContext{
		Pos:              models.QB,
		Pace:             pace,
		Games:            games,
		UsageRate:        0.8,
		DepthRank:        1,
		TalentMultiplier: talent,
	}
}

func TestComputeStatlinePositionPurity(t *testing.T) {
	ctx := models.PlayerContext{
		Pace:             70,
		Games:            12,
		UsageRate:        0.6,
		DepthRank:        1,
		TalentMultiplier: 1.2,
	}

	ctx.Pos = models.WR
	wr := ComputeStatline(ctx)
	if wr.PassYards != 0 || wr.PassTDs != 0 || wr.Interceptions != 0 || wr.RushYards != 0 || wr.RushTDs != 0 {
		t.Errorf("WR statline has passing or rushing stats: %+v", wr)
	}
	if wr.Receptions == 0 || wr.RecYards == 0 {
		t.Errorf("WR statline missing receiving production: %+v", wr)
	}

	ctx.Pos = models.TE
	te := ComputeStatline(ctx)
	if te.PassYards != 0 || te.RushYards != 0 {
		t.Errorf("TE statline has passing or rushing stats: %+v", te)
	}

	ctx.Pos = models.QB
	qb := ComputeStatline(ctx)
	if qb.Receptions != 0 || qb.RecYards != 0 || qb.RecTDs != 0 {
		t.Errorf("QB statline has receiving stats: %+v", qb)
	}
	if qb.PassYards == 0 || qb.RushYards == 0 {
		t.Errorf("QB statline missing production: %+v", qb)
	}
}

func TestComputeStatlineNonNegative(t *testing.T) {
	for _, pos := range models.SkillPositions {
		for _, pace := range []float64{0, 60, 80} {
			for _, usage := range []float64{0, 0.5, 1} {
				for _, talent := range []float64{MinTalentMultiplier, 1, MaxTalentMultiplier} {
					for _, rank := range []int{1, 3, 8} {
						stat := ComputeStatline(models.PlayerContext{
							Pos:              pos,
							Pace:             pace,
							Games:            12,
							UsageRate:        usage,
							DepthRank:        rank,
							TalentMultiplier: talent,
						})
						if stat.PassYards < 0 || stat.PassTDs < 0 || stat.Interceptions < 0 ||
							stat.RushYards < 0 || stat.RushTDs < 0 ||
							stat.Receptions < 0 || stat.RecYards < 0 || stat.RecTDs < 0 {
							t.Fatalf("%s pace=%v usage=%v talent=%v rank=%d: negative stat %+v",
								pos, pace, usage, talent, rank, stat)
						}
					}
				}
			}
		}
	}
}

func TestComputeStatlineQBScenario(t *testing.T) {
	// A 75-play pace over 12 games at a 1.305 talent multiplier
	prof := models.TalentProfile{
		EAOverall:         ip(95),
		DraftCapitalScore: fp(0.9),
	}
	talent := TalentMultiplier(prof, models.QB)
	approx(t, talent, 1.305)

	stat := ComputeStatline(qbContext(75, 12, talent))
	want := models.StatLine{
		PassYards:     5978,
		PassTDs:       40,
		Interceptions: 15,
		RushYards:     282,
		RushTDs:       1,
	}
	if stat != want {
		t.Errorf("statline = %+v, want %+v", stat, want)
	}

	if pts := Score(stat); pts != 403.3 {
		t.Errorf("points = %v, want 403.3", pts)
	}
}

func TestComputeStatlineDepthDominance(t *testing.T) {
	// Identical profiles: the starter never projects below the backup
	for _, pos := range models.SkillPositions {
		ctx := models.PlayerContext{
			Pos:              pos,
			Pace:             72,
			Games:            12,
			UsageRate:        0.55,
			TalentMultiplier: 1.1,
		}
		ctx.DepthRank = 1
		starter := Score(ComputeStatline(ctx))
		ctx.DepthRank = 2
		backup := Score(ComputeStatline(ctx))
		if starter < backup {
			t.Errorf("%s: rank 1 scored %v below rank 2's %v", pos, starter, backup)
		}
		if pos != models.QB && starter <= backup {
			t.Errorf("%s: rank 1 scored %v, not strictly above rank 2's %v", pos, starter, backup)
		}
	}
}

func TestComputeStatlineRBDepthScaling(t *testing.T) {
	ctx := models.PlayerContext{
		Pos:              models.RB,
		Pace:             70,
		Games:            12,
		UsageRate:        0.65,
		DepthRank:        1,
		TalentMultiplier: 1.2,
	}
	first := ComputeStatline(ctx)
	ctx.DepthRank = 3
	third := ComputeStatline(ctx)

	if third.RushYards >= first.RushYards {
		t.Errorf("RB3 rush yards %d not below RB1's %d", third.RushYards, first.RushYards)
	}
	if Score(third) >= Score(first) {
		t.Errorf("RB3 points %v not below RB1's %v", Score(third), Score(first))
	}
}
