package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/service/hashstore"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
)

// PublishOptions mirrors the flags of the publish command.
type PublishOptions struct {
	Publishers []string
	// Force publishes even when the dataset did not change.
	Force bool
	// Test renders everything but writes neither artifacts nor the hash.
	Test bool
	// SQLData selects the SQL source; the static fixture is used otherwise.
	SQLData bool
}

type PublishResult struct {
	RunID      string
	Hash       string
	Changed    bool
	Publishers []string
	Unknown    []string
}

// Publish runs one publish task: acquire data, attach publishers and notify
// them when the dataset changed since the last successful run.
func (c *Container) Publish(ctx context.Context, opts PublishOptions) (*PublishResult, error) {
	runID := uuid.NewString()
	logger := c.Logger.With(zap.String("run_id", runID))
	result := &PublishResult{RunID: runID}

	store := c.hashStore
	if opts.Test {
		store = hashstore.ReadOnly(store, logger)
	}
	data := trends.New(store, logger)

	loader := c.static
	if opts.SQLData {
		loader = c.sql
	}
	logger.Info("Acquiring data", zap.String("source", loader.Name()))
	if err := loader.Load(ctx, data); err != nil {
		return result, fmt.Errorf("failed to acquire %s data: %w", loader.Name(), err)
	}
	result.Hash = data.Hash()

	if opts.Force {
		logger.Debug("Force option is set, clearing hash")
		data.ClearHash()
	}

	publishers, unknown := c.registry(opts.Test, logger).Resolve(opts.Publishers)
	result.Unknown = unknown
	for _, name := range unknown {
		logger.Warn("Publisher does not exist, skipped", zap.String("publisher", name))
	}
	for _, p := range publishers {
		data.RegisterObserver(p)
		result.Publishers = append(result.Publishers, p.Name())
		logger.Debug("Publisher attached", zap.String("publisher", p.Name()))
	}

	if len(publishers) == 0 {
		logger.Warn("No publisher attached, nothing to do")
		return result, nil
	}

	result.Changed = !data.HashExists()
	if err := data.Notify(ctx); err != nil {
		return result, fmt.Errorf("publish run failed: %w", err)
	}

	logger.Info("Publish run finished",
		zap.String("hash", result.Hash),
		zap.Bool("changed", result.Changed),
		zap.Bool("test", opts.Test),
		zap.Strings("publishers", result.Publishers),
	)
	return result, nil
}
