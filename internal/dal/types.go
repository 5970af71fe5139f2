package dal

import "github.com/kpm34/college-football-fantasy-app-sub003/internal/models"

// ProjectionDAL defines the data access layer for the projection engine:
// roster and team-context reads, and idempotent projection writes.
type ProjectionDAL interface {
	// LoadRoster returns every player on record for the season, including
	// non-skill positions (their ratings feed teammate-quality figures).
	LoadRoster(season int) ([]models.Player, error)

	// TeamContexts returns per-team pace and offensive efficiency. Teams
	// missing here fall back to engine defaults.
	TeamContexts(season int) (map[string]models.TeamContext, error)

	// SaveProjection overwrites a player's fantasy points and marks them
	// eligible. Whole-record replacement: never a partial update.
	SaveProjection(playerID string, points float64) error

	Close() error
}
