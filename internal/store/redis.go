package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/praiadomeio/app-ampm/internal/utils"
	"github.com/redis/go-redis/v9"
)

// Cache is the subset of the traced redis client the stores use
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore keeps blobs as plain Redis strings without expiry
type RedisStore struct {
	client Cache
}

// NewRedisStore creates a store over the given client
func NewRedisStore(client Cache) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Name() string { return "redis" }

// Load reads the blob for key
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, span, cleanup := utils.TraceStoreOperation(ctx, "load", s.Name(), key)
	defer cleanup()

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		observe(s.Name(), "load", ErrKeyNotFound)
		return nil, ErrKeyNotFound
	}
	observe(s.Name(), "load", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("load %s from redis: %w", key, err)
	}
	return data, nil
}

// Persist writes the blob for key
func (s *RedisStore) Persist(ctx context.Context, key string, data []byte) error {
	ctx, span, cleanup := utils.TraceStoreOperation(ctx, "persist", s.Name(), key)
	defer cleanup()

	err := s.client.Set(ctx, key, data, 0).Err()
	observe(s.Name(), "persist", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return fmt.Errorf("persist %s to redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
