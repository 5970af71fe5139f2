package models

// Position is a rosterable fantasy position
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"
)

// SkillPositions are the positions the projection engine produces statlines for
var SkillPositions = []Position{QB, RB, WR, TE}

// IsSkillPosition reports whether pos is one of QB/RB/WR/TE
func IsSkillPosition(pos Position) bool {
	switch pos {
	case QB, RB, WR, TE:
		return true
	}
	return false
}

// IsLinePosition reports whether pos is an offensive line position.
// Linemen never receive projections but their ratings feed teammates'
// offensive line grades.
func IsLinePosition(pos Position) bool {
	switch pos {
	case "OL", "C", "G", "T", "OT", "OG":
		return true
	}
	return false
}

// Player is a roster record loaded from the player store. FantasyPoints is
// the most recent known total: it gates draftability and seeds usage/depth
// estimates on the way in, and each projection run overwrites it on the way
// out.
type Player struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Team          string   `json:"team"`
	Position      Position `json:"position"`
	FantasyPoints float64  `json:"fantasy_points"`
	DepthRank     int      `json:"depth_rank,omitempty"` // 0 = unknown
	UsageRate     float64  `json:"usage_rate,omitempty"` // 0 = unknown, estimated from points
	Eligible      bool     `json:"eligible"`
}

// TalentProfile collects every talent signal resolved for one player.
// Pointer fields are absent when the corresponding source had no entry;
// absent fields contribute nothing to the talent multiplier.
type TalentProfile struct {
	// Ability ratings from the video-game dataset, 0-99
	EAOverall      *int `json:"ea_overall,omitempty"`
	EASpeed        *int `json:"ea_speed,omitempty"`
	EAAcceleration *int `json:"ea_acceleration,omitempty"`

	// Professional draft capital
	ProjectedPick     *int     `json:"projected_pick,omitempty"`
	ProjectedRound    *int     `json:"projected_round,omitempty"`
	DraftCapitalScore *float64 `json:"draft_capital_score,omitempty"` // 0-1, higher = earlier pick

	// Prior-season production
	PrevFantasyPoints *float64 `json:"prev_fantasy_points,omitempty"`
	PrevGamesPlayed   *int     `json:"prev_games_played,omitempty"`
	PrevUsageRate     *float64 `json:"prev_usage_rate,omitempty"`
	PrevEfficiency    *float64 `json:"prev_efficiency,omitempty"` // yards per touch/target

	// Teammate quality, 0-100. Structurally always estimable, so the
	// aggregator fills these with explicit defaults when nothing resolves.
	SupportingCastRating *float64 `json:"supporting_cast_rating,omitempty"`
	OffensiveLineGrade   *float64 `json:"offensive_line_grade,omitempty"`

	// Narrative-analysis signals
	ExpertSentiment      *float64 `json:"expert_sentiment,omitempty"`       // -1 to 1
	InjuryConcernLevel   *float64 `json:"injury_concern_level,omitempty"`   // 0 to 1
	DepthChartCertainty  *float64 `json:"depth_chart_certainty,omitempty"`  // 0 to 1, 1 = locked starter
	CoachingChangeImpact *float64 `json:"coaching_change_impact,omitempty"` // -0.5 to 0.5
}

// TeamContext holds per-team offensive context, computed once per run and
// shared by every player on the team
type TeamContext struct {
	Pace          float64 `json:"pace"`           // plays per game
	OffEfficiency float64 `json:"off_efficiency"` // z-scored
}

// PlayerContext is the unit of work for the projection engine: one player
// with team context, usage, depth, and a resolved talent profile
type PlayerContext struct {
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	TeamID   string   `json:"team_id"`
	Pos      Position `json:"position"`

	UsageRate float64 `json:"usage_rate"`
	Pace      float64 `json:"pace"`
	OffZ      float64 `json:"off_z"`
	Games     int     `json:"games"`
	DepthRank int     `json:"depth_rank"`

	Talent           TalentProfile `json:"talent"`
	TalentMultiplier float64       `json:"talent_multiplier"`
}

// StatLine is a full simulated season box score. Fields irrelevant to a
// position stay zero.
type StatLine struct {
	PassYards     int `json:"pass_yards"`
	PassTDs       int `json:"pass_tds"`
	Interceptions int `json:"interceptions"`
	RushYards     int `json:"rush_yards"`
	RushTDs       int `json:"rush_tds"`
	Receptions    int `json:"receptions"`
	RecYards      int `json:"rec_yards"`
	RecTDs        int `json:"rec_tds"`
}

// ProjectionResult is the per-player output of one engine run. Results are
// replaced whole each run; partial updates never happen.
type ProjectionResult struct {
	PlayerID         string   `json:"player_id"`
	Stat             StatLine `json:"statline"`
	FantasyPoints    float64  `json:"fantasy_points"`
	TalentMultiplier float64  `json:"talent_multiplier"`
}

// LeaderboardEntry is one row of the end-of-run report
type LeaderboardEntry struct {
	Name             string   `json:"name"`
	Team             string   `json:"team"`
	Pos              Position `json:"position"`
	FantasyPoints    float64  `json:"fantasy_points"`
	TalentMultiplier float64  `json:"talent_multiplier"`
}
