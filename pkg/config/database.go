package config

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
)

// StoreCloser pairs a blob store with the teardown of its backing
// connection.
type StoreCloser struct {
	Store blobstore.Store
	close func(context.Context) error
}

// Close releases the store's underlying database connection, if any.
func (s *StoreCloser) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore builds the persistence backend selected by cfg.StoreDriver:
// "memory", "mongo" or "postgres".
func OpenStore(ctx context.Context, cfg *Config, logger *zap.Logger) (*StoreCloser, error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Info("using in-memory store")
		return &StoreCloser{Store: blobstore.NewMemoryStore(logger)}, nil
	case "mongo":
		return openMongoStore(ctx, cfg, logger)
	case "postgres":
		return openPostgresStore(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openMongoStore(ctx context.Context, cfg *Config, logger *zap.Logger) (*StoreCloser, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set")
	}

	var client *mongo.Client
	connect := func() error {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return err
		}
		if err := c.Ping(connectCtx, nil); err != nil {
			_ = c.Disconnect(connectCtx)
			return err
		}
		client = c
		return nil
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)); err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	store := blobstore.NewMongoStore(client.Database(cfg.MongoDatabase), logger)
	return &StoreCloser{
		Store: store,
		close: func(ctx context.Context) error { return client.Disconnect(ctx) },
	}, nil
}

func openPostgresStore(cfg *Config, logger *zap.Logger) (*StoreCloser, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL not set")
	}

	var db *gorm.DB
	connect := func() error {
		g, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := g.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		db = g
		return nil
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)); err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	logger.Info("connected to PostgreSQL")

	store, err := blobstore.NewPostgresStore(db, logger)
	if err != nil {
		return nil, err
	}
	return &StoreCloser{
		Store: store,
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
