package database

import (
	"context"
	"fmt"
	"pacientes-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongoDB connects and pings the server. The caller owns the client and must
// Disconnect it on shutdown.
func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(driverConfig.MongoDB.ConnectTimeoutInSeconds)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoConnectionString(driverConfig.MongoDB)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo database: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo database: %w", err)
	}

	log.Info("Successfully connected to mongo database",
		zap.String("host", driverConfig.MongoDB.Host),
		zap.String("database", driverConfig.MongoDB.DbName),
	)
	return client, nil
}

func MongoConnectionString(cfg config.MongoDB) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
}
