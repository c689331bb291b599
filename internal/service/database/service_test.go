package database

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/config"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

func TestOpenDuckDBCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trends.duckdb")
	svc, err := Open(context.Background(), config.DatabaseConfig{Driver: "duckdb", Path: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer svc.Close()

	var one int
	if err := svc.DB().GetContext(context.Background(), &one, "SELECT 1"); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if one != 1 || svc.Driver() != "duckdb" {
		t.Fatalf("unexpected result %d %q", one, svc.Driver())
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "sqlite"}, nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestOpenPostgresRequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "postgres"}, nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
