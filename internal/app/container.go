package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/config"
	"github.com/kapu/mediatrends-publishers-go/internal/publisher"
	"github.com/kapu/mediatrends-publishers-go/internal/service/hashstore"
	"github.com/kapu/mediatrends-publishers-go/internal/service/source"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
)

// Container bundles the services a publish run needs.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	hashStore trends.HashStore
	static    source.Loader
	sql       source.Loader
	// publisherOptions is the base handed to the registry; runs may flip
	// DryRun on a copy.
	publisherOptions publisher.Options

	closers []func()
}

// Build assembles the hash store, data sources and publisher options. On
// failure everything created so far is released.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	var (
		store    trends.HashStore
		location string
	)
	switch cfg.Hash.Backend {
	case "redis":
		redisStore, rerr := hashstore.NewRedisStore(ctx, hashstore.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Hash.RedisKey,
		}, logger)
		if rerr != nil {
			return nil, fmt.Errorf("failed to create redis hash store: %w", rerr)
		}
		closers = append(closers, func() {
			_ = redisStore.Close()
		})
		store = redisStore
		location = redisStore.Key()
	case "file", "":
		fileStore := hashstore.NewFileStore(cfg.Hash.File)
		store = fileStore
		location = fileStore.Path()
	default:
		return nil, fmt.Errorf("unsupported hash backend %q", cfg.Hash.Backend)
	}

	logger.Debug("Hash store ready",
		zap.String("backend", cfg.Hash.Backend),
		zap.String("location", location),
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		hashStore: store,
		static:    source.NewStatic(),
		sql:       source.NewSQL(cfg, logger),
		publisherOptions: publisher.Options{
			WebsiteDir:  cfg.Directories.Website,
			JSONDir:     cfg.Directories.JSON,
			TemplateDir: cfg.Directories.Templates,
			Logger:      logger,
		},
		closers: closers,
	}, nil
}

// PublisherNames lists the names accepted by Publish.
func (c *Container) PublisherNames() []string {
	return c.registry(false, c.Logger).Names()
}

func (c *Container) registry(dryRun bool, logger *zap.Logger) *publisher.Registry {
	opts := c.publisherOptions
	opts.DryRun = dryRun
	opts.Logger = logger
	return publisher.NewDefaultRegistry(opts)
}

// Close releases long-lived clients.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
