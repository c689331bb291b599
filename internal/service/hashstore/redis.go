package hashstore

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/mediatrends-publishers-go/internal/constants"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Key      string
}

// RedisStore keeps the hash under a single redis key, for setups where the
// publisher runs on ephemeral hosts.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	logger *zap.Logger
}

func NewRedisStore(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	if cfg.Key == "" {
		return nil, errors.NewInvalidArgumentError("redis hash key must not be empty", "key", cfg.Key)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, constants.RedisConfig.ReadyTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewHashStoreError("failed to connect to Redis", "ping", addr, err)
	}

	logger.Info("Redis hash store connected",
		zap.String("addr", addr),
		zap.Int("db", cfg.DB),
		zap.String("key", cfg.Key),
	)

	return NewRedisStoreWithClient(client, cfg.Key, logger)
}

// NewRedisStoreWithClient wraps an existing client. The client is closed by
// Close.
func NewRedisStoreWithClient(client redis.UniversalClient, key string, logger *zap.Logger) (*RedisStore, error) {
	if client == nil {
		return nil, errors.NewInvalidArgumentError("redis client must not be nil", "client", nil)
	}
	if key == "" {
		return nil, errors.NewInvalidArgumentError("redis hash key must not be empty", "key", key)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, key: key, logger: logger}, nil
}

// Key returns the redis key holding the hash.
func (s *RedisStore) Key() string {
	return s.key
}

func (s *RedisStore) Load(ctx context.Context) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("Hash get failed", zap.String("key", s.key), zap.Error(err))
		return "", false, errors.NewHashStoreError("get failed", "load", s.key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Save(ctx context.Context, hash string) error {
	if err := s.client.Set(ctx, s.key, hash, 0).Err(); err != nil {
		s.logger.Error("Hash set failed", zap.String("key", s.key), zap.Error(err))
		return errors.NewHashStoreError("set failed", "save", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	s.logger.Debug("Redis disconnected")
	return nil
}
