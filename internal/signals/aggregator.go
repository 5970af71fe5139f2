package signals

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/config"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/logger"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// PriorStats is one player's aggregated prior-season production.
type PriorStats struct {
	FantasyPoints float64
	GamesPlayed   int
	UsageRate     float64
	Efficiency    float64
}

// PriorStatsSource supplies prior-season aggregates keyed by name|team.
// Optional: a nil source leaves the prior-performance fields absent.
type PriorStatsSource interface {
	PriorSeasonStats(season int) (map[string]PriorStats, error)
}

// Aggregator key-matches the independent talent-signal sources and produces
// one TalentProfile per rosterable player.
type Aggregator struct {
	DataDir   string
	Sentiment SentimentProvider
	Prior     PriorStatsSource
	Defaults  config.Defaults
}

// SignalSet is the aggregation output for one season: profiles and explicit
// depth-chart ranks, both keyed by player ID.
type SignalSet struct {
	Profiles   map[string]models.TalentProfile
	DepthRanks map[string]int
}

// teamTalent accumulates teammate ratings for one team so supporting-cast and
// line figures are computed once per team and shared.
type teamTalent struct {
	skillSum   map[models.Position]float64
	skillCount map[models.Position]int
	lineSum    float64
	lineCount  int
}

// BuildProfiles loads every signal source for the season and assembles a
// talent profile per roster player. Source failures degrade to absent fields
// and are logged; this never fails the run.
func (a *Aggregator) BuildProfiles(season int, roster []models.Player) *SignalSet {
	ratings := a.loadRatings(season)
	capital := a.loadDraftCapital(season)
	depth := a.loadDepthCharts(season)
	prior := a.loadPriorStats(season)

	talentByTeam := collectTeamTalent(roster, ratings)

	set := &SignalSet{
		Profiles:   make(map[string]models.TalentProfile, len(roster)),
		DepthRanks: make(map[string]int),
	}

	for _, p := range roster {
		if !models.IsSkillPosition(p.Position) {
			continue
		}

		key := Key(p.Name, p.Team)
		profile := models.TalentProfile{}

		if r, ok := ratings[key]; ok {
			// A zero rating means the cell was empty or unreadable, not a
			// zero-skill player; treat it as absent
			if r.Overall > 0 {
				profile.EAOverall = intp(r.Overall)
			}
			if r.Speed > 0 {
				profile.EASpeed = intp(r.Speed)
			}
			if r.Acceleration > 0 {
				profile.EAAcceleration = intp(r.Acceleration)
			}
		}

		if dc, ok := capital[key]; ok {
			profile.ProjectedPick = intp(dc.ProjectedPick)
			profile.ProjectedRound = intp(dc.ProjectedRound)
			profile.DraftCapitalScore = floatp(dc.Score)
		}

		if ps, ok := prior[key]; ok && ps.GamesPlayed > 0 {
			profile.PrevFantasyPoints = floatp(ps.FantasyPoints)
			profile.PrevGamesPlayed = intp(ps.GamesPlayed)
			profile.PrevUsageRate = floatp(ps.UsageRate)
			profile.PrevEfficiency = floatp(ps.Efficiency)
		}

		cast, line := talentByTeam.surroundingTalent(p.Team, p.Position, a.Defaults)
		profile.SupportingCastRating = floatp(cast)
		profile.OffensiveLineGrade = floatp(line)

		if a.Sentiment != nil {
			s := a.Sentiment.Analyze(p.Name, p.Team, p.Position)
			profile.ExpertSentiment = floatp(s.ExpertSentiment)
			profile.InjuryConcernLevel = floatp(s.InjuryConcernLevel)
			profile.DepthChartCertainty = floatp(s.DepthChartCertainty)
			profile.CoachingChangeImpact = floatp(s.CoachingChangeImpact)
		}

		set.Profiles[p.ID] = profile
		if rank, ok := depth[key]; ok {
			set.DepthRanks[p.ID] = rank
		}
	}

	return set
}

func (a *Aggregator) loadRatings(season int) map[string]Rating {
	path := filepath.Join(a.DataDir, "ea", fmt.Sprintf("ratings_%d.csv", season))
	ratings, err := LoadRatings(path)
	if err != nil {
		logSourceMiss("ability ratings", path, err)
		return map[string]Rating{}
	}
	logger.Info("Loaded ability ratings", "count", len(ratings), "season", season)
	return ratings
}

func (a *Aggregator) loadDraftCapital(season int) map[string]DraftCapital {
	path := filepath.Join(a.DataDir, "mockdraft", fmt.Sprintf("%d.csv", season))
	capital, err := LoadDraftCapital(path)
	if err != nil {
		logSourceMiss("mock draft", path, err)
		return map[string]DraftCapital{}
	}
	logger.Info("Loaded mock draft entries", "count", len(capital), "season", season)
	return capital
}

func (a *Aggregator) loadDepthCharts(season int) map[string]int {
	path := filepath.Join(a.DataDir, "processed", "depth", fmt.Sprintf("depth_chart_%d.json", season))
	depth, err := LoadDepthCharts(path)
	if err != nil {
		logSourceMiss("depth chart", path, err)
		return map[string]int{}
	}
	logger.Info("Loaded depth chart entries", "count", len(depth), "season", season)
	return depth
}

func (a *Aggregator) loadPriorStats(season int) map[string]PriorStats {
	if a.Prior == nil {
		return map[string]PriorStats{}
	}
	prior, err := a.Prior.PriorSeasonStats(season - 1)
	if err != nil {
		logger.Warn("Prior-season stats unavailable", "season", season-1, "error", err)
		return map[string]PriorStats{}
	}
	logger.Info("Loaded prior-season stats", "count", len(prior), "season", season-1)
	return prior
}

func logSourceMiss(source, path string, err error) {
	if os.IsNotExist(err) {
		logger.Warn("Signal source file not found, fields will be absent", "source", source, "path", path)
		return
	}
	logger.Warn("Signal source unreadable, fields will be absent", "source", source, "path", path, "error", err)
}

type teamTalentIndex map[string]*teamTalent

// collectTeamTalent indexes teammate ratings by team so per-player lookups
// are O(1) after a single pass over the roster.
func collectTeamTalent(roster []models.Player, ratings map[string]Rating) teamTalentIndex {
	idx := make(teamTalentIndex)

	for _, p := range roster {
		r, ok := ratings[Key(p.Name, p.Team)]
		if !ok || r.Overall <= 0 {
			continue
		}

		tt := idx[p.Team]
		if tt == nil {
			tt = &teamTalent{
				skillSum:   make(map[models.Position]float64),
				skillCount: make(map[models.Position]int),
			}
			idx[p.Team] = tt
		}

		switch {
		case models.IsLinePosition(p.Position):
			tt.lineSum += float64(r.Overall)
			tt.lineCount++
		case models.IsSkillPosition(p.Position):
			tt.skillSum[p.Position] += float64(r.Overall)
			tt.skillCount[p.Position]++
		}
	}

	return idx
}

// surroundingTalent averages teammate ratings for a player: supporting cast
// is every skill teammate at a different position, line grade is the
// offensive line room. Falls back to the configured defaults when no
// teammate ratings resolve — these are explicit defaults, not absences,
// because teammate quality is always estimable.
func (idx teamTalentIndex) surroundingTalent(team string, pos models.Position, d config.Defaults) (cast, line float64) {
	cast, line = d.CastRating, d.LineGrade

	tt := idx[team]
	if tt == nil {
		return cast, line
	}

	var castSum float64
	var castCount int
	for p, sum := range tt.skillSum {
		if p == pos {
			continue
		}
		castSum += sum
		castCount += tt.skillCount[p]
	}
	if castCount > 0 {
		cast = castSum / float64(castCount)
	}

	if tt.lineCount > 0 {
		line = tt.lineSum / float64(tt.lineCount)
	}

	return cast, line
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }
