package store

import (
	"context"
	"errors"
	"time"

	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cachePrefix = "records:cache:"

// CachedStore is a read-through, write-through Redis cache in front of a
// backing store. Cache failures are logged and never fail the call.
type CachedStore struct {
	backing Store
	cache   Cache
	ttl     time.Duration
	logger  *logging.SafeLogger
}

// NewCachedStore wraps backing with cache
func NewCachedStore(backing Store, cache Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{
		backing: backing,
		cache:   cache,
		ttl:     ttl,
		logger:  logging.Logger.Named("store"),
	}
}

func (s *CachedStore) Name() string { return "cached_" + s.backing.Name() }

// Load serves the blob from the cache, falling back to the backing store
func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, error) {
	cacheKey := cachePrefix + key

	data, err := s.cache.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		observability.CacheHits.WithLabelValues("hit").Inc()
		return data, nil
	case errors.Is(err, redis.Nil):
		observability.CacheHits.WithLabelValues("miss").Inc()
	default:
		observability.CacheHits.WithLabelValues("error").Inc()
		s.logger.Warn("record cache unavailable, reading backing store",
			zap.String("key", key),
			zap.Error(err))
	}

	data, err = s.backing.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, data, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to fill record cache", zap.String("key", key), zap.Error(err))
	}
	return data, nil
}

// Persist writes the backing store first, then refreshes the cache.
// A failed refresh drops the cached copy so readers never see stale data.
func (s *CachedStore) Persist(ctx context.Context, key string, data []byte) error {
	if err := s.backing.Persist(ctx, key, data); err != nil {
		return err
	}

	cacheKey := cachePrefix + key
	if err := s.cache.Set(ctx, cacheKey, data, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to refresh record cache, invalidating",
			zap.String("key", key),
			zap.Error(err))
		if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate record cache", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// Ping checks the backing store only; the cache is optional
func (s *CachedStore) Ping(ctx context.Context) error {
	return s.backing.Ping(ctx)
}
