package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, mode, body string) {
	t.Helper()
	if err := os.WriteFile(FilePath(dir, mode), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv(EnvConfigDir, filepath.Join(t.TempDir(), "missing"))
	t.Setenv(EnvMode, "")

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != DefaultMode || cfg.File != "" {
		t.Fatalf("unexpected mode/file %q %q", cfg.Mode, cfg.File)
	}
	if cfg.Database.Driver != "duckdb" || cfg.Hash.Backend != "file" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Database.QueryTimeout != 30*time.Second {
		t.Fatalf("unexpected query timeout %v", cfg.Database.QueryTimeout)
	}
}

func TestLoadModeFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "prod", `
hash:
  file: /var/lib/mediastrends/hash
database:
  path: /srv/trends.duckdb
  query_timeout: 10s
directories:
  website: /srv/www
queries:
  trending_series: trending_series.sql
`)
	t.Setenv("MEDIASTRENDS_WEBSITE_DIR", "/srv/override")
	t.Setenv("MEDIASTRENDS_LOG_LEVEL", "debug")

	cfg, err := Load(LoadOptions{ConfigDir: dir, Mode: "prod"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != "prod" || cfg.File != FilePath(dir, "prod") {
		t.Fatalf("unexpected mode/file %q %q", cfg.Mode, cfg.File)
	}
	if cfg.Hash.File != "/var/lib/mediastrends/hash" {
		t.Fatalf("expected hash file from yaml, got %q", cfg.Hash.File)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Fatalf("expected 10s query timeout, got %v", cfg.Database.QueryTimeout)
	}
	if cfg.Directories.Website != "/srv/override" {
		t.Fatalf("expected env to win over yaml, got %q", cfg.Directories.Website)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Queries.TrendingMovies != "trending_movies.sql" || cfg.Queries.TrendingSeries != "trending_series.sql" {
		t.Fatalf("unexpected queries %+v", cfg.Queries)
	}
}

func TestLoadExplicitDirRequiresFile(t *testing.T) {
	_, err := Load(LoadOptions{ConfigDir: t.TempDir(), Mode: "nope"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadRejectsInvalidDriver(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dev", "database:\n  driver: oracle\n")
	if _, err := Load(LoadOptions{ConfigDir: dir}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"redis backend", func(c *Config) { c.Hash.Backend = "redis" }, true},
		{"unknown backend", func(c *Config) { c.Hash.Backend = "s3" }, false},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres" }, false},
		{"postgres with dsn", func(c *Config) {
			c.Database.Driver = "postgres"
			c.Database.DSN = "postgres://localhost/trends"
		}, true},
		{"no website dir", func(c *Config) { c.Directories.Website = "" }, false},
		{"no movies query", func(c *Config) { c.Queries.TrendingMovies = "" }, false},
	}
	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if (err == nil) != tc.ok {
			t.Fatalf("%s: expected ok=%v, got %v", tc.name, tc.ok, err)
		}
	}
}

func TestDataSourceName(t *testing.T) {
	d := DatabaseConfig{Driver: "duckdb", Path: "a.duckdb", DSN: "ignored"}
	if d.DataSourceName() != "a.duckdb" {
		t.Fatalf("unexpected dsn %q", d.DataSourceName())
	}
	d.Driver = "postgres"
	if d.DataSourceName() != "ignored" {
		t.Fatalf("unexpected dsn %q", d.DataSourceName())
	}
}
