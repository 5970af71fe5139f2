package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/signals"
)

// Client reads prior-season production aggregates from the analytics
// warehouse. It satisfies signals.PriorStatsSource.
type Client struct {
	conn driver.Conn
}

// NewClient connects to ClickHouse and verifies the connection.
func NewClient(addr, database, username, password string) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &Client{conn: conn}, nil
}

// PriorSeasonStats aggregates the per-game stat feed for one season into
// season totals per player, keyed by lowercase name|team.
func (c *Client) PriorSeasonStats(season int) (map[string]signals.PriorStats, error) {
	query := `
		SELECT
			lower(player_name) AS name,
			lower(team) AS team,
			toFloat64(sum(fantasy_points)) AS fantasy_points,
			toInt32(count()) AS games_played,
			toFloat64(avg(usage_rate)) AS usage_rate,
			toFloat64(avg(yards_per_touch)) AS efficiency
		FROM player_game_stats
		WHERE season = $1
		GROUP BY name, team
	`

	rows, err := c.conn.Query(context.Background(), query, season)
	if err != nil {
		return nil, fmt.Errorf("query prior-season stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]signals.PriorStats)
	for rows.Next() {
		var name, team string
		var points, usage, efficiency float64
		var games int32
		if err := rows.Scan(&name, &team, &points, &games, &usage, &efficiency); err != nil {
			return nil, fmt.Errorf("scan prior-season row: %w", err)
		}
		stats[name+"|"+team] = signals.PriorStats{
			FantasyPoints: points,
			GamesPlayed:   int(games),
			UsageRate:     usage,
			Efficiency:    efficiency,
		}
	}

	return stats, nil
}

// Close closes the ClickHouse connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
