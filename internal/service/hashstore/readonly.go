package hashstore

import (
	"context"

	"github.com/kapu/mediatrends-publishers-go/internal/trends"
	"go.uber.org/zap"
)

type readOnly struct {
	inner  trends.HashStore
	logger *zap.Logger
}

// ReadOnly wraps a store so that Save only logs. Used by test runs.
func ReadOnly(inner trends.HashStore, logger *zap.Logger) trends.HashStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &readOnly{inner: inner, logger: logger}
}

func (r *readOnly) Load(ctx context.Context) (string, bool, error) {
	return r.inner.Load(ctx)
}

func (r *readOnly) Save(_ context.Context, hash string) error {
	r.logger.Info("Test mode: hash not persisted", zap.String("hash", hash))
	return nil
}
