package dal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// SQLiteDAL implements ProjectionDAL using SQLite
type SQLiteDAL struct {
	db *sql.DB
}

// NewSQLiteDAL opens (or creates) a SQLite player store
func NewSQLiteDAL(dbPath string) (*SQLiteDAL, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	dal := &SQLiteDAL{db: db}
	if err := dal.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return dal, nil
}

func (s *SQLiteDAL) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		team TEXT NOT NULL,
		season INTEGER NOT NULL,
		fantasy_points REAL NOT NULL DEFAULT 0,
		depth_rank INTEGER NOT NULL DEFAULT 0,
		usage_rate REAL NOT NULL DEFAULT 0,
		eligible INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS team_context (
		team_id TEXT NOT NULL,
		season INTEGER NOT NULL,
		pace REAL NOT NULL,
		off_efficiency REAL NOT NULL,
		PRIMARY KEY (team_id, season)
	);

	CREATE INDEX IF NOT EXISTS idx_players_season ON players(season);
	CREATE INDEX IF NOT EXISTS idx_players_team ON players(team);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDAL) LoadRoster(season int) ([]models.Player, error) {
	rows, err := s.db.Query(`
		SELECT id, name, position, team, fantasy_points, depth_rank, usage_rate, eligible
		FROM players WHERE season = ?`, season)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	defer rows.Close()

	var roster []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Team, &p.FantasyPoints,
			&p.DepthRank, &p.UsageRate, &p.Eligible); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		roster = append(roster, p)
	}

	return roster, rows.Err()
}

func (s *SQLiteDAL) TeamContexts(season int) (map[string]models.TeamContext, error) {
	rows, err := s.db.Query(`
		SELECT team_id, pace, off_efficiency
		FROM team_context WHERE season = ?`, season)
	if err != nil {
		return nil, fmt.Errorf("load team contexts: %w", err)
	}
	defer rows.Close()

	contexts := make(map[string]models.TeamContext)
	for rows.Next() {
		var team string
		var tc models.TeamContext
		if err := rows.Scan(&team, &tc.Pace, &tc.OffEfficiency); err != nil {
			return nil, fmt.Errorf("scan team context row: %w", err)
		}
		contexts[team] = tc
	}

	return contexts, rows.Err()
}

func (s *SQLiteDAL) SaveProjection(playerID string, points float64) error {
	res, err := s.db.Exec(`
		UPDATE players SET fantasy_points = ?, eligible = 1 WHERE id = ?`,
		points, playerID)
	if err != nil {
		return fmt.Errorf("save projection: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("player not found: %s", playerID)
	}
	return nil
}

func (s *SQLiteDAL) Close() error {
	return s.db.Close()
}
