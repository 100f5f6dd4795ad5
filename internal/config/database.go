package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

// auditLogRetention is how long audit entries survive before the TTL index drops them.
const auditLogRetention = 365 * 24 * time.Hour

var (
	// MongoDB database handle
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB connects to MongoDB and makes sure the collections carry their indexes.
func InitMongoDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(20).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := EnsureIndexes(ctx, MongoDB); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
	return nil
}

// InitRedis connects the traced Redis client.
func InitRedis(ctx context.Context) error {
	opts, err := redisOptions(AppConfig.RedisURI)
	if err != nil {
		return err
	}
	if AppConfig.RedisPassword != "" {
		opts.Password = AppConfig.RedisPassword
	}
	opts.DB = AppConfig.RedisDB
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2

	Redis = redisclient.NewClient(redis.NewClient(opts))

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return fmt.Errorf("ping redis: %w", err)
	}

	logging.Logger.Info("connected to Redis", zap.String("uri", AppConfig.RedisURI))
	return nil
}

// redisOptions accepts either a redis:// URL or a bare host:port address.
func redisOptions(uri string) (*redis.Options, error) {
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		opts, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("parse redis uri: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: uri}, nil
}

// maskMongoURI masks credentials in a MongoDB URI
func maskMongoURI(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.User == nil {
		return uri
	}
	parsed.User = url.UserPassword("****", "****")
	return parsed.String()
}

// EnsureIndexes creates the indexes the application relies on if they don't exist.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	logger := zap.L().Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// The records collection is keyed by _id only.
	return ensureIndexes(ctx, logger, db.Collection(AppConfig.AuditLogsCollection), auditLogIndexes())
}

func auditLogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("timestamp_-1"),
		},
		{
			Keys:    bson.D{{Key: "action", Value: 1}, {Key: "resource", Value: 1}},
			Options: options.Index().SetName("action_1_resource_1"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_1"),
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: 1}},
			Options: options.Index().
				SetName("timestamp_ttl").
				SetExpireAfterSeconds(int32(auditLogRetention.Seconds())),
		},
	}
}

// ensureIndexes lists the existing indexes and creates the missing ones.
func ensureIndexes(ctx context.Context, logger *zap.Logger, collection *mongo.Collection, models []mongo.IndexModel) error {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.String("collection", collection.Name()), zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existing[name] = true
		}
	}

	for _, model := range models {
		name := indexName(model)
		if existing[name] {
			continue
		}
		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			// Another instance may have created it first
			if mongo.IsDuplicateKeyError(err) {
				logger.Info("index already exists (created by another instance)",
					zap.String("collection", collection.Name()),
					zap.String("index", name))
				continue
			}
			logger.Error("failed to create index",
				zap.String("collection", collection.Name()),
				zap.String("index", name),
				zap.Error(err))
			return err
		}
		logger.Info("created index",
			zap.String("collection", collection.Name()),
			zap.String("index", name))
	}
	return nil
}

func indexName(model mongo.IndexModel) string {
	if model.Options != nil && model.Options.Name != nil {
		return *model.Options.Name
	}
	return ""
}
