package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap holds every long lived handle of the process. Redis and Minio are nil when
// their feature is disabled by configuration.
type Bootstrap struct {
	Router         *chi.Mux
	MongoClient    *mongo.Client
	MongoDB        *mongo.Database
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.MongoClient != nil {
		err := b.MongoClient.Disconnect(ctx)
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing MongoDB")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	b.Logger.Info("Successfully closing Logger")
	// Sync on stdout/stderr returns EINVAL on some platforms, which is not a shutdown failure.
	b.Logger.Sync()
	return nil
}
