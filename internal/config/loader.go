package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (New())
//  2. YAML file, if path or CFB_CONFIG names one
//  3. environment variables with the CFB_ prefix, nested keys separated by
//     double underscore: CFB_STORE__DRIVER=postgres, CFB_TOP_N=25.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("CFB_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("CFB_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "CFB_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case "memory", "sqlite":
	case "postgres":
		if cfg.Store.PostgresURL == "" {
			return errors.New("store.postgres_url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q (valid: memory, sqlite, postgres)", cfg.Store.Driver)
	}

	switch cfg.NATS.Mode {
	case "off", "embedded", "server":
	default:
		return fmt.Errorf("unknown nats mode %q (valid: off, embedded, server)", cfg.NATS.Mode)
	}

	if cfg.TopN <= 0 {
		return errors.New("top_n must be positive")
	}
	if cfg.Defaults.Games <= 0 {
		return errors.New("defaults.games must be positive")
	}
	return nil
}
