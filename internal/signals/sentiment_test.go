package signals

import (
	"testing"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

func checkBounds(t *testing.T, who string, s Sentiment) {
	t.Helper()
	if s.ExpertSentiment < -1 || s.ExpertSentiment > 1 {
		t.Errorf("%s: expert_sentiment %v out of [-1,1]", who, s.ExpertSentiment)
	}
	if s.InjuryConcernLevel < 0 || s.InjuryConcernLevel > 1 {
		t.Errorf("%s: injury_concern_level %v out of [0,1]", who, s.InjuryConcernLevel)
	}
	if s.DepthChartCertainty < 0 || s.DepthChartCertainty > 1 {
		t.Errorf("%s: depth_chart_certainty %v out of [0,1]", who, s.DepthChartCertainty)
	}
	if s.CoachingChangeImpact < -0.5 || s.CoachingChangeImpact > 0.5 {
		t.Errorf("%s: coaching_change_impact %v out of [-0.5,0.5]", who, s.CoachingChangeImpact)
	}
}

func TestNeutralSentiment(t *testing.T) {
	s := Neutral().Analyze("Anyone", "Anywhere", models.WR)
	want := Sentiment{DepthChartCertainty: 1}
	if s != want {
		t.Errorf("neutral = %+v, want %+v", s, want)
	}
}

func TestFixedSentimentClampsBounds(t *testing.T) {
	provider := FixedSentiment{S: Sentiment{
		ExpertSentiment:      3,
		InjuryConcernLevel:   -1,
		DepthChartCertainty:  2,
		CoachingChangeImpact: -0.9,
	}}
	s := provider.Analyze("Anyone", "Anywhere", models.QB)
	want := Sentiment{ExpertSentiment: 1, DepthChartCertainty: 1, CoachingChangeImpact: -0.5}
	if s != want {
		t.Errorf("clamped = %+v, want %+v", s, want)
	}
}

func TestHeuristicSentimentDeterministic(t *testing.T) {
	h := NewHeuristicSentiment()
	first := h.Analyze("Caleb Whitfield", "Louisville", models.WR)
	for i := 0; i < 5; i++ {
		if got := h.Analyze("Caleb Whitfield", "Louisville", models.WR); got != first {
			t.Fatalf("output changed between calls: %+v != %+v", got, first)
		}
	}
}

func TestHeuristicSentimentBounds(t *testing.T) {
	h := NewHeuristicSentiment()
	names := []string{"Arch Manning", "LaNorris Sellers", "Quincy Mabry", "Zz Top", "X"}
	teams := []string{"Georgia", "Vanderbilt", "Texas", "Nowhere State"}
	for _, name := range names {
		for _, team := range teams {
			for _, pos := range models.SkillPositions {
				checkBounds(t, name+"/"+team, h.Analyze(name, team, pos))
			}
		}
	}
}

func TestHeuristicSentimentStarFloor(t *testing.T) {
	h := NewHeuristicSentiment()
	s := h.Analyze("Arch Manning", "Texas", models.QB)
	if s.DepthChartCertainty < 0.9 {
		t.Errorf("recognized star certainty = %v, want at least 0.9", s.DepthChartCertainty)
	}
}

func TestHeuristicSentimentTeamReputation(t *testing.T) {
	h := NewHeuristicSentiment()

	// The jitter is a pure function of the key, so the team adjustment is
	// the difference between the output and the jitter baseline
	jitterSentiment := func(name, team string) float64 {
		u1, _, _, _ := unitFloats(Key(name, team))
		return u1*0.4 - 0.2
	}
	jitterConcern := func(name, team string) float64 {
		_, u2, _, _ := unitFloats(Key(name, team))
		return u2*0.3 + 0.05
	}

	up := h.Analyze("Jay Lund", "Georgia", models.WR)
	if diff := up.ExpertSentiment - jitterSentiment("Jay Lund", "Georgia"); diff < 0.0999 || diff > 0.1001 {
		t.Errorf("positive-team sentiment boost = %v, want 0.1", diff)
	}

	down := h.Analyze("Jay Lund", "Vanderbilt", models.WR)
	if diff := down.ExpertSentiment - jitterSentiment("Jay Lund", "Vanderbilt"); diff < -0.1001 || diff > -0.0999 {
		t.Errorf("negative-team sentiment drop = %v, want -0.1", diff)
	}
	if diff := down.InjuryConcernLevel - jitterConcern("Jay Lund", "Vanderbilt"); diff < 0.0499 || diff > 0.0501 {
		t.Errorf("negative-team concern bump = %v, want 0.05", diff)
	}

	neutral := h.Analyze("Jay Lund", "Nowhere State", models.WR)
	if neutral.ExpertSentiment != jitterSentiment("Jay Lund", "Nowhere State") {
		t.Errorf("unlisted team adjusted sentiment: %+v", neutral)
	}
}

func TestFileSentiment(t *testing.T) {
	path := writeFile(t, "sentiment.json", `{
		"deacon mills|louisville": {
			"expert_sentiment": 0.4,
			"injury_concern_level": 0.1,
			"depth_chart_certainty": 0.95,
			"coaching_change_impact": 0.2
		},
		"out of range|louisville": {"expert_sentiment": 5}
	}`)

	provider, err := NewFileSentiment(path, Neutral())
	if err != nil {
		t.Fatalf("NewFileSentiment: %v", err)
	}

	s := provider.Analyze("Deacon Mills", "Louisville", models.QB)
	want := Sentiment{
		ExpertSentiment:      0.4,
		InjuryConcernLevel:   0.1,
		DepthChartCertainty:  0.95,
		CoachingChangeImpact: 0.2,
	}
	if s != want {
		t.Errorf("curated record = %+v, want %+v", s, want)
	}

	if got := provider.Analyze("Out Of Range", "Louisville", models.QB); got.ExpertSentiment != 1 {
		t.Errorf("file records should clamp: %+v", got)
	}

	// Unlisted players fall through to the fallback provider
	if got := provider.Analyze("Nobody Here", "Louisville", models.QB); got != (Sentiment{DepthChartCertainty: 1}) {
		t.Errorf("fallback = %+v, want neutral", got)
	}
}

func TestFileSentimentMissingFile(t *testing.T) {
	if _, err := NewFileSentiment("/does/not/exist.json", nil); err == nil {
		t.Fatal("expected an error for a missing sentiment file")
	}
}
