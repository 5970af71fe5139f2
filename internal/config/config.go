// Package config defines the projection job's configuration and loading.
//
// Defaults-first: New() returns a fully usable in-memory configuration, and
// Load layers an optional YAML file and CFB_-prefixed environment variables
// on top of it.
package config

import "github.com/kpm34/college-football-fantasy-app-sub003/internal/models"

// Defaults collects the implicit constants the projection math falls back to
// when an input is unavailable. Keeping them in one struct keeps the
// algorithm auditable.
type Defaults struct {
	// Pace is plays per game assumed for teams without context data.
	Pace float64 `koanf:"pace"`

	// OffEfficiency is the z-scored offensive efficiency assumed for teams
	// without context data.
	OffEfficiency float64 `koanf:"off_efficiency"`

	// CastRating substitutes for supporting-cast quality when no teammate
	// ratings resolve.
	CastRating float64 `koanf:"cast_rating"`

	// LineGrade substitutes for offensive line quality when no teammate
	// ratings resolve.
	LineGrade float64 `koanf:"line_grade"`

	// Games is the season length in games.
	Games int `koanf:"games"`
}

// TeamContext builds a TeamContext from the configured defaults.
func (d Defaults) TeamContext() models.TeamContext {
	return models.TeamContext{Pace: d.Pace, OffEfficiency: d.OffEfficiency}
}

// StoreConfig selects and configures the player record store backend.
type StoreConfig struct {
	// Driver is one of memory, sqlite, postgres.
	Driver string `koanf:"driver"`

	// SQLiteFile is the database path for the sqlite driver.
	SQLiteFile string `koanf:"sqlite_file"`

	// PostgresURL is the connection string for the postgres driver.
	PostgresURL string `koanf:"postgres_url"`
}

// NATSConfig configures run-event publishing.
type NATSConfig struct {
	// Mode is one of off, embedded, server.
	Mode    string `koanf:"mode"`
	URL     string `koanf:"url"`
	Subject string `koanf:"subject"`
}

// ClickHouseConfig configures the optional prior-season stats source.
type ClickHouseConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Addr     string `koanf:"addr"`
	Database string `koanf:"database"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Config is the full configuration for one projection run.
type Config struct {
	// DataDir is the root of the talent-signal files
	// (ea/, mockdraft/, processed/depth/).
	DataDir string `koanf:"data_dir"`

	// TopN sets the leaderboard size.
	TopN int `koanf:"top_n"`

	Defaults   Defaults         `koanf:"defaults"`
	Store      StoreConfig      `koanf:"store"`
	NATS       NATSConfig       `koanf:"nats"`
	ClickHouse ClickHouseConfig `koanf:"clickhouse"`
}

// New returns the configuration defaults.
func New() *Config {
	return &Config{
		DataDir: "data",
		TopN:    10,
		Defaults: Defaults{
			Pace:          70,
			OffEfficiency: 0,
			CastRating:    75,
			LineGrade:     75,
			Games:         12,
		},
		Store: StoreConfig{
			Driver:     "memory",
			SQLiteFile: "dev.sqlite",
		},
		NATS: NATSConfig{
			Mode:    "embedded",
			URL:     "nats://localhost:4222",
			Subject: "projections.events",
		},
		ClickHouse: ClickHouseConfig{
			Addr:     "localhost:9000",
			Database: "default",
			Username: "default",
		},
	}
}
