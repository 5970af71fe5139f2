package dal

import (
	"fmt"
	"sync"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// MemoryDAL implements ProjectionDAL with in-memory storage. The default
// constructor seeds a small realistic roster so a development run needs no
// external store.
type MemoryDAL struct {
	mu       sync.RWMutex
	players  []models.Player
	contexts map[string]models.TeamContext
}

// NewMemoryDAL creates an in-memory store seeded with the default roster.
func NewMemoryDAL() *MemoryDAL {
	return &MemoryDAL{
		players:  defaultRoster(),
		contexts: defaultTeamContexts(),
	}
}

// NewMemoryDALWith creates an in-memory store over the given roster and team
// contexts. Used by tests and fixtures.
func NewMemoryDALWith(roster []models.Player, contexts map[string]models.TeamContext) *MemoryDAL {
	if contexts == nil {
		contexts = map[string]models.TeamContext{}
	}
	return &MemoryDAL{players: roster, contexts: contexts}
}

func (m *MemoryDAL) LoadRoster(season int) ([]models.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	roster := make([]models.Player, len(m.players))
	copy(roster, m.players)
	return roster, nil
}

func (m *MemoryDAL) TeamContexts(season int) (map[string]models.TeamContext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contexts := make(map[string]models.TeamContext, len(m.contexts))
	for k, v := range m.contexts {
		contexts[k] = v
	}
	return contexts, nil
}

func (m *MemoryDAL) SaveProjection(playerID string, points float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.players {
		if m.players[i].ID == playerID {
			m.players[i].FantasyPoints = points
			m.players[i].Eligible = true
			return nil
		}
	}
	return fmt.Errorf("player not found: %s", playerID)
}

// Player returns a copy of one stored player record.
func (m *MemoryDAL) Player(playerID string) (models.Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.players {
		if p.ID == playerID {
			return p, true
		}
	}
	return models.Player{}, false
}

func (m *MemoryDAL) Close() error { return nil }

func defaultRoster() []models.Player {
	return []models.Player{
		// Louisville
		{ID: "lou_qb1", Name: "Deacon Mills", Team: "Louisville", Position: models.QB, FantasyPoints: 362},
		{ID: "lou_qb2", Name: "Trey Halvorsen", Team: "Louisville", Position: models.QB, FantasyPoints: 88},
		{ID: "lou_rb1", Name: "Marcus Vaughn", Team: "Louisville", Position: models.RB, FantasyPoints: 261},
		{ID: "lou_rb2", Name: "Okafor Jennings", Team: "Louisville", Position: models.RB, FantasyPoints: 142},
		{ID: "lou_wr1", Name: "Caleb Whitfield", Team: "Louisville", Position: models.WR, FantasyPoints: 214},
		{ID: "lou_wr2", Name: "Jalen Rucker", Team: "Louisville", Position: models.WR, FantasyPoints: 151},
		{ID: "lou_wr3", Name: "Dante Sloane", Team: "Louisville", Position: models.WR, FantasyPoints: 97},
		{ID: "lou_te1", Name: "Harlan Pryce", Team: "Louisville", Position: models.TE, FantasyPoints: 104},
		{ID: "lou_ot1", Name: "Big Ray Tomlin", Team: "Louisville", Position: "OT", FantasyPoints: 0},
		{ID: "lou_c1", Name: "Sam Kessler", Team: "Louisville", Position: "C", FantasyPoints: 0},
		// Georgia
		{ID: "uga_qb1", Name: "Bryce Landry", Team: "Georgia", Position: models.QB, FantasyPoints: 341},
		{ID: "uga_rb1", Name: "Terrell Osei", Team: "Georgia", Position: models.RB, FantasyPoints: 248},
		{ID: "uga_rb2", Name: "Noah Redfern", Team: "Georgia", Position: models.RB, FantasyPoints: 131},
		{ID: "uga_wr1", Name: "Amari Colston", Team: "Georgia", Position: models.WR, FantasyPoints: 207},
		{ID: "uga_wr2", Name: "Kofi Brennan", Team: "Georgia", Position: models.WR, FantasyPoints: 139},
		{ID: "uga_te1", Name: "Wyatt Drummond", Team: "Georgia", Position: models.TE, FantasyPoints: 126},
		{ID: "uga_og1", Name: "Hank Bisset", Team: "Georgia", Position: "OG", FantasyPoints: 0},
		// Texas
		{ID: "tex_qb1", Name: "Cole Marchetti", Team: "Texas", Position: models.QB, FantasyPoints: 376},
		{ID: "tex_rb1", Name: "Devon Sparks", Team: "Texas", Position: models.RB, FantasyPoints: 233},
		{ID: "tex_wr1", Name: "Zion Allaire", Team: "Texas", Position: models.WR, FantasyPoints: 228},
		{ID: "tex_wr2", Name: "Micah Hollowell", Team: "Texas", Position: models.WR, FantasyPoints: 148},
		{ID: "tex_te1", Name: "Gus Ferrante", Team: "Texas", Position: models.TE, FantasyPoints: 91},
		{ID: "tex_ol1", Name: "Moose Calloway", Team: "Texas", Position: "OL", FantasyPoints: 0},
		// Vanderbilt
		{ID: "van_qb1", Name: "Eli Strand", Team: "Vanderbilt", Position: models.QB, FantasyPoints: 268},
		{ID: "van_rb1", Name: "Quincy Mabry", Team: "Vanderbilt", Position: models.RB, FantasyPoints: 162},
		{ID: "van_wr1", Name: "Tobias Lindqvist", Team: "Vanderbilt", Position: models.WR, FantasyPoints: 118},
		{ID: "van_te1", Name: "Porter Nkemdiche", Team: "Vanderbilt", Position: models.TE, FantasyPoints: 66},
	}
}

func defaultTeamContexts() map[string]models.TeamContext {
	return map[string]models.TeamContext{
		"Louisville": {Pace: 72.5, OffEfficiency: 0.4},
		"Georgia":    {Pace: 68.0, OffEfficiency: 0.9},
		"Texas":      {Pace: 74.0, OffEfficiency: 0.7},
		"Vanderbilt": {Pace: 65.5, OffEfficiency: -0.6},
	}
}
