package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/clickhouse"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/config"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/dal"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/engine"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/logger"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/pubsub"
	"github.com/kpm34/college-football-fantasy-app-sub003/internal/signals"
)

// Execute runs the projections CLI
func Execute() error {
	root := &cobra.Command{
		Use:   "cfb-projections",
		Short: "Talent-adjusted fantasy projection engine",
	}
	root.AddCommand(projectCmd())
	return root.Execute()
}

func projectCmd() *cobra.Command {
	var (
		season     int
		topN       int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run talent-adjusted projections for a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if topN > 0 {
				cfg.TopN = topN
			}
			return runProjections(cfg, season)
		},
	}

	cmd.Flags().IntVar(&season, "season", time.Now().Year(), "season to project")
	cmd.Flags().IntVar(&topN, "top", 0, "leaderboard size (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")

	return cmd
}

func runProjections(cfg *config.Config, season int) error {
	logger.Info("Starting talent-adjusted projection run", "season", season,
		"store", cfg.Store.Driver, "data_dir", cfg.DataDir)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	events, cleanup, err := openEvents(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	var prior signals.PriorStatsSource
	if cfg.ClickHouse.Enabled {
		ch, err := clickhouse.NewClient(cfg.ClickHouse.Addr, cfg.ClickHouse.Database,
			cfg.ClickHouse.Username, cfg.ClickHouse.Password)
		if err != nil {
			// Prior-season stats are an enrichment, not a requirement
			logger.Warn("ClickHouse unavailable, prior-season fields will be absent", "error", err)
		} else {
			defer ch.Close()
			prior = ch
			logger.Info("Connected to ClickHouse", "address", cfg.ClickHouse.Addr)
		}
	}

	runner := &engine.Runner{
		Store: store,
		Signals: &signals.Aggregator{
			DataDir:   cfg.DataDir,
			Sentiment: signals.NewHeuristicSentiment(),
			Prior:     prior,
			Defaults:  cfg.Defaults,
		},
		Defaults: cfg.Defaults,
		TopN:     cfg.TopN,
	}
	if events != nil {
		// Assign only when present: a typed nil would still publish
		runner.Events = events
	}

	summary, err := runner.Run(season)
	if err != nil {
		return err
	}

	engine.LogLeaderboard(summary.Leaderboard)
	return nil
}

func openStore(cfg *config.Config) (dal.ProjectionDAL, error) {
	switch cfg.Store.Driver {
	case "memory":
		logger.Info("Using in-memory player store")
		return dal.NewMemoryDAL(), nil
	case "sqlite":
		store, err := dal.NewSQLiteDAL(cfg.Store.SQLiteFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite: %w", err)
		}
		logger.Info("Connected to SQLite player store", "file", cfg.Store.SQLiteFile)
		return store, nil
	case "postgres":
		store, err := dal.NewPostgresDAL(cfg.Store.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		logger.Info("Connected to Postgres player store")
		return store, nil
	}
	return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
}

func openEvents(cfg *config.Config) (*pubsub.PubSub, func(), error) {
	switch cfg.NATS.Mode {
	case "off":
		return nil, nil, nil
	case "embedded":
		embedded, err := pubsub.NewEmbeddedNATSPubSub(pubsub.EmbeddedNATSOptions{
			Port:       -1,
			Subject:    cfg.NATS.Subject,
			StreamName: pubsub.StreamName,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start embedded NATS: %w", err)
		}
		logger.Info("Embedded NATS server ready", "url", embedded.GetServerURL())
		return pubsub.NewWithUpstream(embedded), embedded.Close, nil
	case "server":
		upstream, err := pubsub.NewNATSPubSub(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		logger.Info("Connected to NATS", "url", cfg.NATS.URL)
		return pubsub.NewWithUpstream(upstream), upstream.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown nats mode: %s", cfg.NATS.Mode)
}
