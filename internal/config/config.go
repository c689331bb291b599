package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix    = "MEDIASTRENDS_"
	EnvConfigDir = EnvPrefix + "CONFIG_DIR"
	EnvMode      = EnvPrefix + "MODE"

	DefaultConfigDir = "config"
	DefaultMode      = "dev"
)

type Config struct {
	Mode        string            `koanf:"mode"`
	Logging     LoggingConfig     `koanf:"logging"`
	Hash        HashConfig        `koanf:"hash"`
	Redis       RedisConfig       `koanf:"redis"`
	Database    DatabaseConfig    `koanf:"database"`
	Directories DirectoriesConfig `koanf:"directories"`
	Queries     QueriesConfig     `koanf:"queries"`

	// File is the configuration file that was loaded, empty when none.
	File string `koanf:"-"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

type HashConfig struct {
	Backend  string `koanf:"backend"`
	File     string `koanf:"file"`
	RedisKey string `koanf:"redis_key"`
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type DatabaseConfig struct {
	Driver         string        `koanf:"driver"`
	Path           string        `koanf:"path"`
	DSN            string        `koanf:"dsn"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`
}

type DirectoriesConfig struct {
	SQL       string `koanf:"sql"`
	Templates string `koanf:"templates"`
	Website   string `koanf:"website"`
	JSON      string `koanf:"json"`
}

type QueriesConfig struct {
	Informations   string `koanf:"informations"`
	TrendingMovies string `koanf:"trending_movies"`
	TrendingSeries string `koanf:"trending_series"`
}

// LoadOptions overrides where the configuration file is looked up. Empty
// fields fall back to the environment, then to the defaults.
type LoadOptions struct {
	ConfigDir string
	Mode      string
}

func defaultConfig() *Config {
	return &Config{
		Mode: DefaultMode,
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
		Hash: HashConfig{
			Backend:  "file",
			File:     "data/mediastrends.hash",
			RedisKey: "mediastrends:publish:hash",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
			DB:   0,
		},
		Database: DatabaseConfig{
			Driver:         "duckdb",
			Path:           "data/mediastrends.duckdb",
			ConnectTimeout: 5 * time.Second,
			QueryTimeout:   30 * time.Second,
		},
		Directories: DirectoriesConfig{
			SQL:       "sql",
			Templates: "",
			Website:   "public",
			JSON:      "public/data",
		},
		Queries: QueriesConfig{
			Informations:   "mediastrends_informations.sql",
			TrendingMovies: "trending_movies.sql",
			TrendingSeries: "",
		},
	}
}

// Load builds the configuration from, lowest priority first: built-in
// defaults, <dir>/mediastrends.<mode>.yaml when present, then .env and the
// process environment.
func Load(opts LoadOptions) (*Config, error) {
	_ = godotenv.Load()

	dir := firstNonEmpty(opts.ConfigDir, os.Getenv(EnvConfigDir), DefaultConfigDir)
	mode := firstNonEmpty(opts.Mode, os.Getenv(EnvMode), DefaultMode)

	k := koanf.New(".")

	defaults := defaultConfig()
	defaults.Mode = mode
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := FilePath(dir, mode)
	loaded := ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		loaded = path
	} else if opts.ConfigDir != "" {
		return nil, fmt.Errorf("config file %s not found", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Mode = mode
	cfg.File = loaded

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// FilePath returns the configuration file for a mode.
func FilePath(dir, mode string) string {
	return filepath.Join(dir, fmt.Sprintf("mediastrends.%s.yaml", mode))
}

func (c *Config) Validate() error {
	switch c.Hash.Backend {
	case "file":
		if c.Hash.File == "" {
			return fmt.Errorf("hash.file is required with the file backend")
		}
	case "redis":
		if c.Hash.RedisKey == "" {
			return fmt.Errorf("hash.redis_key is required with the redis backend")
		}
		if c.Redis.Host == "" || c.Redis.Port <= 0 {
			return fmt.Errorf("redis.host and redis.port are required with the redis backend")
		}
	default:
		return fmt.Errorf("hash.backend must be file or redis, got %q", c.Hash.Backend)
	}

	switch c.Database.Driver {
	case "duckdb":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required with the duckdb driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required with the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver must be duckdb or postgres, got %q", c.Database.Driver)
	}

	if c.Directories.Website == "" {
		return fmt.Errorf("directories.website is required")
	}
	if c.Queries.Informations == "" || c.Queries.TrendingMovies == "" {
		return fmt.Errorf("queries.informations and queries.trending_movies are required")
	}
	return nil
}

// DataSourceName returns what the SQL driver should be opened with.
func (d DatabaseConfig) DataSourceName() string {
	if d.Driver == "postgres" {
		return d.DSN
	}
	return d.Path
}

var envMappings = map[string]string{
	"log_level":          "logging.level",
	"log_file":           "logging.file",
	"hash_backend":       "hash.backend",
	"hash_file":          "hash.file",
	"hash_redis_key":     "hash.redis_key",
	"redis_host":         "redis.host",
	"redis_port":         "redis.port",
	"redis_password":     "redis.password",
	"redis_db":           "redis.db",
	"db_driver":          "database.driver",
	"db_path":            "database.path",
	"db_dsn":             "database.dsn",
	"db_connect_timeout": "database.connect_timeout",
	"db_query_timeout":   "database.query_timeout",
	"sql_dir":            "directories.sql",
	"templates_dir":      "directories.templates",
	"website_dir":        "directories.website",
	"json_dir":           "directories.json",
	"query_informations": "queries.informations",
	"query_movies":       "queries.trending_movies",
	"query_series":       "queries.trending_series",
}

// envTransformFunc maps MEDIASTRENDS_* variables to config paths, e.g.
// MEDIASTRENDS_HASH_FILE -> hash.file. Unknown variables are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
