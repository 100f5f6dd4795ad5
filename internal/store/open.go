package store

import (
	"context"
	"fmt"

	"github.com/praiadomeio/app-ampm/internal/config"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"go.uber.org/zap"
)

// Open connects the backend selected by STORE_BACKEND
func Open(ctx context.Context) (Store, error) {
	switch config.AppConfig.StoreBackend {
	case config.StoreMemory:
		logging.Logger.Warn("using in-memory record store, data is lost on restart")
		return NewMemoryStore(), nil
	case config.StoreMongo:
		if err := config.InitMongoDB(ctx); err != nil {
			return nil, err
		}
		return NewMongoStore(config.MongoDB.Collection(config.AppConfig.RecordsCollection)), nil
	case config.StoreRedis:
		if err := config.InitRedis(ctx); err != nil {
			return nil, err
		}
		return NewRedisStore(config.Redis), nil
	case config.StoreCached:
		if err := config.InitMongoDB(ctx); err != nil {
			return nil, err
		}
		if err := config.InitRedis(ctx); err != nil {
			return nil, err
		}
		backing := NewMongoStore(config.MongoDB.Collection(config.AppConfig.RecordsCollection))
		return NewCachedStore(backing, config.Redis, config.AppConfig.RedisTTL), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.AppConfig.StoreBackend)
	}
}

// Close releases the connections opened by Open
func Close(ctx context.Context) {
	if config.MongoDB != nil {
		if err := config.MongoDB.Client().Disconnect(ctx); err != nil {
			logging.Logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}
	if config.Redis != nil {
		if err := config.Redis.Close(); err != nil {
			logging.Logger.Error("failed to close Redis client", zap.Error(err))
		}
	}
}
