package engine

import (
	"fmt"
	"sort"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/config"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/dal"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/logger"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/pubsub"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/signals"
)

// EventPublisher receives run events. Optional on the Runner.
type EventPublisher interface {
	Publish(pubsub.Event)
}

// Runner executes one projection batch: gather signals, compute a talent
// multiplier and statline per eligible player, persist, rank.
type Runner struct {
	Store    dal.ProjectionDAL
	Signals  *signals.Aggregator
	Events   EventPublisher
	Defaults config.Defaults
	TopN     int
}

// RunSummary reports what one batch did. Per-player failures are recovered
// and counted here; the run itself only fails when the roster cannot be
// loaded at all.
type RunSummary struct {
	Season         int                       `json:"season"`
	Processed      int                       `json:"processed"`
	Skipped        int                       `json:"skipped"`
	WriteFailures  int                       `json:"write_failures"`
	MissingContext int                       `json:"missing_context"`
	Leaderboard    []models.LeaderboardEntry `json:"leaderboard"`
}

type outcome struct {
	player models.Player
	result models.ProjectionResult
}

// Run projects every draftable player for the season. Returns an error only
// on catastrophic input failure (the roster itself cannot be read).
func (r *Runner) Run(season int) (*RunSummary, error) {
	roster, err := r.Store.LoadRoster(season)
	if err != nil {
		return nil, fmt.Errorf("load roster for season %d: %w", season, err)
	}

	contexts, err := r.Store.TeamContexts(season)
	if err != nil {
		logger.Warn("Team contexts unavailable, using defaults for all teams", "error", err)
		contexts = map[string]models.TeamContext{}
	}

	set := r.Signals.BuildProfiles(season, roster)

	summary := &RunSummary{Season: season}
	var outcomes []outcome
	warnedTeams := map[string]bool{}

	for _, p := range roster {
		if !models.IsSkillPosition(p.Position) || p.FantasyPoints <= 0 {
			// Not draftable: linemen, defenders, or no historical signal
			continue
		}
		if p.ID == "" || p.Name == "" || p.Team == "" {
			logger.Warn("Player record unresolvable, skipping", "id", p.ID, "name", p.Name)
			summary.Skipped++
			continue
		}

		tc, ok := contexts[p.Team]
		if !ok {
			tc = r.Defaults.TeamContext()
			summary.MissingContext++
			if !warnedTeams[p.Team] {
				logger.Warn("No context for team, using defaults", "team", p.Team,
					"pace", tc.Pace, "off_efficiency", tc.OffEfficiency)
				warnedTeams[p.Team] = true
			}
		}

		ctx := r.buildContext(p, tc, set)
		stat := ComputeStatline(ctx)
		points := Score(stat)

		result := models.ProjectionResult{
			PlayerID:         p.ID,
			Stat:             stat,
			FantasyPoints:    points,
			TalentMultiplier: ctx.TalentMultiplier,
		}

		if err := r.Store.SaveProjection(p.ID, points); err != nil {
			logger.Error("Failed to persist projection", "player", p.Name, "id", p.ID, "error", err)
			summary.WriteFailures++
		} else if r.Events != nil {
			r.Events.Publish(pubsub.Event{
				Type: pubsub.EventProjectionUpdated,
				Payload: map[string]interface{}{
					"player_id":         p.ID,
					"name":              p.Name,
					"position":          string(p.Position),
					"fantasy_points":    points,
					"talent_multiplier": ctx.TalentMultiplier,
				},
			})
		}

		outcomes = append(outcomes, outcome{player: p, result: result})
		summary.Processed++

		if summary.Processed%50 == 0 {
			logger.Info("Run progress", "processed", summary.Processed)
		}
	}

	summary.Leaderboard = rank(outcomes, r.TopN)

	if r.Events != nil {
		r.Events.Publish(pubsub.Event{
			Type: pubsub.EventRunCompleted,
			Payload: map[string]interface{}{
				"season":         season,
				"processed":      summary.Processed,
				"skipped":        summary.Skipped,
				"write_failures": summary.WriteFailures,
			},
		})
	}

	logger.Info("Projection run complete", "season", season, "processed", summary.Processed,
		"skipped", summary.Skipped, "write_failures", summary.WriteFailures,
		"missing_context", summary.MissingContext)

	return summary, nil
}

// buildContext assembles the per-player unit of work. Usage and depth fall
// back to estimates from the player's known point total; every player ends
// up with a depth rank.
func (r *Runner) buildContext(p models.Player, tc models.TeamContext, set *signals.SignalSet) models.PlayerContext {
	usage := p.UsageRate
	if usage <= 0 {
		usage = EstimateUsageRate(p.FantasyPoints)
	}

	rank := set.DepthRanks[p.ID]
	if rank < 1 {
		rank = p.DepthRank
	}
	if rank < 1 {
		rank = EstimateDepthRank(p.FantasyPoints, p.Position)
	}

	talent := set.Profiles[p.ID]

	return models.PlayerContext{
		PlayerID:         p.ID,
		Name:             p.Name,
		TeamID:           p.Team,
		Pos:              p.Position,
		UsageRate:        usage,
		Pace:             tc.Pace,
		OffZ:             tc.OffEfficiency,
		Games:            r.Defaults.Games,
		DepthRank:        rank,
		Talent:           talent,
		TalentMultiplier: TalentMultiplier(talent, p.Position),
	}
}

// rank orders outcomes by fantasy points descending. Ties break on player ID
// ascending so the leaderboard is deterministic run to run.
func rank(outcomes []outcome, topN int) []models.LeaderboardEntry {
	sorted := make([]outcome, len(outcomes))
	copy(sorted, outcomes)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].result.FantasyPoints != sorted[j].result.FantasyPoints {
			return sorted[i].result.FantasyPoints > sorted[j].result.FantasyPoints
		}
		return sorted[i].player.ID < sorted[j].player.ID
	})

	if topN > 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}

	board := make([]models.LeaderboardEntry, 0, len(sorted))
	for _, o := range sorted {
		board = append(board, models.LeaderboardEntry{
			Name:             o.player.Name,
			Team:             o.player.Team,
			Pos:              o.player.Position,
			FantasyPoints:    o.result.FantasyPoints,
			TalentMultiplier: o.result.TalentMultiplier,
		})
	}
	return board
}

// LogLeaderboard writes the top-N report to the log, one row per player.
func LogLeaderboard(board []models.LeaderboardEntry) {
	logger.Info("Top talent-adjusted projections", "count", len(board))
	for i, e := range board {
		logger.Info(fmt.Sprintf("%2d. %s", i+1, e.Name), "team", e.Team, "pos", string(e.Pos),
			"points", e.FantasyPoints, "talent", fmt.Sprintf("%.2fx", e.TalentMultiplier))
	}
}
