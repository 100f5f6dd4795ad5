//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupMongo(t *testing.T) *mongo.Collection {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "Failed to start MongoDB container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "Failed to connect to MongoDB")
	t.Cleanup(func() { client.Disconnect(ctx) })

	return client.Database("ampm_test").Collection("records")
}

func setupRedis(t *testing.T) *redisclient.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "Failed to start Redis container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redisclient.NewClient(redis.NewClient(opts))
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { client.Close() })
	return client
}

func TestMongoStore_Integration(t *testing.T) {
	ctx := context.Background()
	s := NewMongoStore(setupMongo(t))

	require.NoError(t, s.Ping(ctx))

	_, err := s.Load(ctx, KeyMembers)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Persist(ctx, KeyMembers, []byte(`[{"id":"m1","name":"Maria"}]`)))
	require.NoError(t, s.Persist(ctx, KeyMembers, []byte(`[{"id":"m1","name":"Maria Souza"}]`)))

	got, err := s.Load(ctx, KeyMembers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1","name":"Maria Souza"}]`, string(got))

	count, err := s.collection.CountDocuments(ctx, map[string]string{"_id": KeyMembers})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "persist upserts a single document per key")
}

func TestRedisStore_Integration(t *testing.T) {
	ctx := context.Background()
	s := NewRedisStore(setupRedis(t))

	_, err := s.Load(ctx, KeyPayments)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Persist(ctx, KeyPayments, []byte(`[]`)))
	got, err := s.Load(ctx, KeyPayments)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestRepository_CachedMongo_Integration(t *testing.T) {
	ctx := context.Background()
	backing := NewMongoStore(setupMongo(t))
	cache := setupRedis(t)
	repo := NewRepository(NewCachedStore(backing, cache, time.Minute), "")

	snap, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)

	members := []models.Member{{ID: "m1", Name: "Maria Souza", Active: true}}
	require.NoError(t, repo.PersistMembers(ctx, members))

	// The backing store and the cache agree
	fromMongo, err := backing.Load(ctx, KeyMembers)
	require.NoError(t, err)
	fromCache, err := cache.Get(ctx, cachePrefix+KeyMembers).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, string(fromMongo), string(fromCache))

	snap, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", snap.Members[0].Name)
}
