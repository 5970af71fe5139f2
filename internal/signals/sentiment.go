package signals

import (
	"encoding/json"
	"hash/fnv"
	"os"
	"strings"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// Sentiment is the output contract of the narrative-analysis collaborator.
// How a provider produces these (curation, scraping, model inference) is its
// own business; the engine only requires the four bounded floats.
type Sentiment struct {
	ExpertSentiment      float64 `json:"expert_sentiment"`       // -1 to 1
	InjuryConcernLevel   float64 `json:"injury_concern_level"`   // 0 to 1
	DepthChartCertainty  float64 `json:"depth_chart_certainty"`  // 0 to 1
	CoachingChangeImpact float64 `json:"coaching_change_impact"` // -0.5 to 0.5
}

// clampBounds forces a sentiment record into its documented ranges.
func (s Sentiment) clampBounds() Sentiment {
	return Sentiment{
		ExpertSentiment:      clampf(-1, 1, s.ExpertSentiment),
		InjuryConcernLevel:   clampf(0, 1, s.InjuryConcernLevel),
		DepthChartCertainty:  clampf(0, 1, s.DepthChartCertainty),
		CoachingChangeImpact: clampf(-0.5, 0.5, s.CoachingChangeImpact),
	}
}

// SentimentProvider supplies narrative-analysis signals per player. Providers
// must be deterministic for a given (name, team, pos) so the multiplier math
// stays independently testable.
type SentimentProvider interface {
	Analyze(name, team string, pos models.Position) Sentiment
}

// FixedSentiment returns the same record for every player. Useful in tests
// and as a neutral default.
type FixedSentiment struct {
	S Sentiment
}

// Neutral returns a provider whose output leaves the talent multiplier
// untouched: zero sentiment, zero concern, locked-in starter certainty.
func Neutral() FixedSentiment {
	return FixedSentiment{S: Sentiment{DepthChartCertainty: 1}}
}

func (f FixedSentiment) Analyze(string, string, models.Position) Sentiment {
	return f.S.clampBounds()
}

// FileSentiment reads curated sentiment records from a JSON object keyed by
// name|team. Players without a record fall through to the Fallback provider.
type FileSentiment struct {
	records  map[string]Sentiment
	Fallback SentimentProvider
}

// NewFileSentiment loads a curated sentiment file.
func NewFileSentiment(path string, fallback SentimentProvider) (*FileSentiment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records map[string]Sentiment
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return &FileSentiment{records: records, Fallback: fallback}, nil
}

func (f *FileSentiment) Analyze(name, team string, pos models.Position) Sentiment {
	if s, ok := f.records[Key(name, team)]; ok {
		return s.clampBounds()
	}
	if f.Fallback != nil {
		return f.Fallback.Analyze(name, team, pos)
	}
	return Neutral().S
}

// HeuristicSentiment derives sentiment from coarse team reputation and star
// recognition, with a small per-player deterministic jitter in place of the
// manual curation a real narrative source would provide.
type HeuristicSentiment struct {
	PositiveTeams []string
	NegativeTeams []string
	KnownStars    []string
}

// NewHeuristicSentiment returns the provider with the stock team and star
// lists.
func NewHeuristicSentiment() *HeuristicSentiment {
	return &HeuristicSentiment{
		PositiveTeams: []string{"Georgia", "Alabama", "Texas", "Oregon"},
		NegativeTeams: []string{"Vanderbilt", "Northwestern"},
		KnownStars:    []string{"arch manning", "lanorris sellers", "keelon russell", "blaze berlowitz"},
	}
}

func (h *HeuristicSentiment) Analyze(name, team string, pos models.Position) Sentiment {
	// Backfield players carry less depth-chart ambiguity than pass catchers
	baseUncertainty := 0.25
	if pos == models.QB || pos == models.RB {
		baseUncertainty = 0.15
	}

	u1, u2, u3, u4 := unitFloats(Key(name, team))

	s := Sentiment{
		ExpertSentiment:      u1*0.4 - 0.2,
		InjuryConcernLevel:   u2*0.3 + 0.05,
		DepthChartCertainty:  1 - u3*baseUncertainty,
		CoachingChangeImpact: (u4 - 0.5) * 0.1,
	}

	for _, t := range h.PositiveTeams {
		if t == team {
			s.ExpertSentiment += 0.1
			s.DepthChartCertainty += 0.05
		}
	}
	for _, t := range h.NegativeTeams {
		if t == team {
			s.ExpertSentiment -= 0.1
			s.InjuryConcernLevel += 0.05
		}
	}

	lower := strings.ToLower(name)
	for _, star := range h.KnownStars {
		if strings.Contains(lower, star) {
			s.ExpertSentiment += 0.2
			if s.DepthChartCertainty < 0.9 {
				s.DepthChartCertainty = 0.9
			}
			break
		}
	}

	return s.clampBounds()
}

// unitFloats hashes a key into four floats in [0,1). Same key, same floats.
func unitFloats(key string) (float64, float64, float64, float64) {
	h := fnv.New64a()
	h.Write([]byte(key))
	v := h.Sum64()

	next := func() float64 {
		u := float64(v&0xFFFF) / 0x10000
		v = v>>16 | v<<48
		return u
	}
	return next(), next(), next(), next()
}
