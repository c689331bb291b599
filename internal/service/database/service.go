package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/config"
	"github.com/kapu/mediatrends-publishers-go/internal/constants"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

// Service is a short-lived connection to the trending media store. It is
// opened for one acquisition and closed right after.
type Service struct {
	db     *sqlx.DB
	driver string
	logger *zap.Logger
}

// Open connects with cfg.Driver ("duckdb" or "postgres") and pings the
// database before returning.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dsn := cfg.DataSourceName()
	switch cfg.Driver {
	case "duckdb":
		if dsn != "" && dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	case "postgres":
		if dsn == "" {
			return nil, errors.NewInvalidArgumentError("postgres dsn must not be empty", "dsn", dsn)
		}
	default:
		return nil, errors.NewInvalidArgumentError("unsupported database driver", "driver", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(constants.DatabaseConfig.MaxOpenConns)
	db.SetMaxIdleConns(constants.DatabaseConfig.MaxIdleConns)
	db.SetConnMaxLifetime(constants.DatabaseConfig.ConnMaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = constants.DatabaseConfig.PingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", cfg.Driver, err)
	}

	logger.Debug("Database connected",
		zap.String("driver", cfg.Driver),
		zap.String("path", cfg.Path),
	)

	return &Service{db: db, driver: cfg.Driver, logger: logger}, nil
}

func (s *Service) DB() *sqlx.DB {
	return s.db
}

func (s *Service) Driver() string {
	return s.driver
}

func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
