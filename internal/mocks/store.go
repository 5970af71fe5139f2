package mocks

import (
	"fmt"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/dal"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// FlakyStore wraps a real store and fails writes for selected players, for
// exercising the run's partial-failure handling.
type FlakyStore struct {
	dal.ProjectionDAL
	FailWrites map[string]bool
}

func (f *FlakyStore) SaveProjection(playerID string, points float64) error {
	if f.FailWrites[playerID] {
		return fmt.Errorf("simulated write failure for %s", playerID)
	}
	return f.ProjectionDAL.SaveProjection(playerID, points)
}

// EmptyStore is a store with no players at all.
type EmptyStore struct{}

func (EmptyStore) LoadRoster(int) ([]models.Player, error) { return nil, nil }

func (EmptyStore) TeamContexts(int) (map[string]models.TeamContext, error) {
	return map[string]models.TeamContext{}, nil
}

func (EmptyStore) SaveProjection(string, float64) error { return nil }

func (EmptyStore) Close() error { return nil }

// BrokenStore fails roster loads, for exercising the catastrophic path.
type BrokenStore struct {
	EmptyStore
	Err error
}

func (b *BrokenStore) LoadRoster(int) ([]models.Player, error) {
	return nil, b.Err
}
