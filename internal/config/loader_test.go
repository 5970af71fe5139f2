package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "data" || cfg.TopN != 10 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("store driver = %q, want memory", cfg.Store.Driver)
	}
	if cfg.Defaults.Pace != 70 || cfg.Defaults.Games != 12 {
		t.Errorf("projection defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.CastRating != 75 || cfg.Defaults.LineGrade != 75 {
		t.Errorf("talent defaults = %+v", cfg.Defaults)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_dir: /var/lib/projections
top_n: 25
defaults:
  pace: 68.5
store:
  driver: sqlite
  sqlite_file: projections.db
nats:
  mode: "off"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/var/lib/projections" || cfg.TopN != 25 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.SQLiteFile != "projections.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.NATS.Mode != "off" {
		t.Errorf("nats mode = %q, want off", cfg.NATS.Mode)
	}
	if cfg.Defaults.Pace != 68.5 {
		t.Errorf("pace = %v, want 68.5", cfg.Defaults.Pace)
	}
	// Untouched keys keep their defaults
	if cfg.Defaults.Games != 12 {
		t.Errorf("games = %d, want default 12", cfg.Defaults.Games)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CFB_TOP_N", "5")
	t.Setenv("CFB_STORE__DRIVER", "sqlite")
	t.Setenv("CFB_DEFAULTS__GAMES", "14")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TopN != 5 {
		t.Errorf("top_n = %d, want 5", cfg.TopN)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("store driver = %q, want sqlite", cfg.Store.Driver)
	}
	if cfg.Defaults.Games != 14 {
		t.Errorf("games = %d, want 14", cfg.Defaults.Games)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "CFB_STORE__DRIVER", "cassandra"},
		{"postgres without url", "CFB_STORE__DRIVER", "postgres"},
		{"unknown nats mode", "CFB_NATS__MODE", "carrier-pigeon"},
		{"non-positive top_n", "CFB_TOP_N", "0"},
		{"non-positive games", "CFB_DEFAULTS__GAMES", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Errorf("Load accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestDefaultsTeamContext(t *testing.T) {
	d := Defaults{Pace: 66, OffEfficiency: -0.3}
	tc := d.TeamContext()
	if tc.Pace != 66 || tc.OffEfficiency != -0.3 {
		t.Errorf("team context = %+v", tc)
	}
}
