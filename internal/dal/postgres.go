package dal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/models"
)

// PostgresDAL implements ProjectionDAL using PostgreSQL
type PostgresDAL struct {
	db *sql.DB
}

// NewPostgresDAL opens a PostgreSQL player store. Pool settings and ping
// retries are tuned for managed clusters where DNS and failover can make the
// first connection slow.
func NewPostgresDAL(connString string) (*PostgresDAL, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	maxRetries := 5
	retryDelay := 5 * time.Second
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		lastErr = db.PingContext(ctx)
		cancel()

		if lastErr == nil {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if lastErr != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres after %d retries: %w", maxRetries, lastErr)
	}

	dal := &PostgresDAL{db: db}
	if err := dal.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return dal, nil
}

func (p *PostgresDAL) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		team TEXT NOT NULL,
		season INTEGER NOT NULL,
		fantasy_points DOUBLE PRECISION NOT NULL DEFAULT 0,
		depth_rank INTEGER NOT NULL DEFAULT 0,
		usage_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		eligible BOOLEAN NOT NULL DEFAULT false,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS team_context (
		team_id TEXT NOT NULL,
		season INTEGER NOT NULL,
		pace DOUBLE PRECISION NOT NULL,
		off_efficiency DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (team_id, season)
	);

	CREATE INDEX IF NOT EXISTS idx_players_season ON players(season);
	CREATE INDEX IF NOT EXISTS idx_players_team ON players(team);
	`

	_, err := p.db.Exec(schema)
	return err
}

func (p *PostgresDAL) LoadRoster(season int) ([]models.Player, error) {
	rows, err := p.db.Query(`
		SELECT id, name, position, team, fantasy_points, depth_rank, usage_rate, eligible
		FROM players WHERE season = $1`, season)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	defer rows.Close()

	var roster []models.Player
	for rows.Next() {
		var pl models.Player
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Position, &pl.Team, &pl.FantasyPoints,
			&pl.DepthRank, &pl.UsageRate, &pl.Eligible); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		roster = append(roster, pl)
	}

	return roster, rows.Err()
}

func (p *PostgresDAL) TeamContexts(season int) (map[string]models.TeamContext, error) {
	rows, err := p.db.Query(`
		SELECT team_id, pace, off_efficiency
		FROM team_context WHERE season = $1`, season)
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

func (p *PostgresDAL) SaveProjection(playerID string, points float64) error {
	res, err := p.db.Exec(`
		UPDATE players SET fantasy_points = $1, eligible = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, points, playerID)
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

func (p *PostgresDAL) Close() error {
	return p.db.Close()
}
