package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/auth"
	"github.com/sagarsahu/creative-vault/backend/internal/cache"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
	"github.com/sagarsahu/creative-vault/backend/internal/router"
	"github.com/sagarsahu/creative-vault/backend/internal/storage"
	"github.com/sagarsahu/creative-vault/backend/pkg/config"
	"github.com/sagarsahu/creative-vault/backend/pkg/firebase"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	// Persistence
	store, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close(ctx) //nolint:errcheck

	if err := repositories.Seed(ctx, store.Store, cfg.OwnerEmail, logger); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}

	// Cache, shared by sessions and view markers
	appCache, err := cache.New(cache.Config{Provider: cfg.CacheProvider, RedisURL: cfg.RedisURL}, logger)
	if err != nil {
		logger.Fatal("failed to initialize cache", zap.Error(err))
	}
	defer appCache.Close()

	users := repositories.NewUserRepository(store.Store)
	manager := auth.NewManager(users, appCache, cfg.JWTSecret, cfg.SessionTTL, logger)

	// Firebase sign-in is optional; without credentials the endpoint is
	// simply not registered.
	var firebaseAuth *fbauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		app, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Fatal("failed to initialize firebase", zap.Error(err))
		}
		firebaseAuth = app.AuthClient
		logger.Info("firebase auth enabled")
	}

	uploader, err := newUploader(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize uploader", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	config.SetupMiddleware(e)

	router.SetupRoutes(e, router.Deps{
		Users:         users,
		Works:         repositories.NewWorkRepository(store.Store),
		Comments:      repositories.NewCommentRepository(store.Store),
		Notifications: repositories.NewNotificationRepository(store.Store),
		Settings:      repositories.NewSettingsRepository(store.Store),
		Manager:       manager,
		Cache:         appCache,
		Uploader:      uploader,
		FirebaseAuth:  firebaseAuth,
		OwnerEmail:    cfg.OwnerEmail,
		Logger:        logger,
	})

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newUploader(cfg *config.Config, logger *zap.Logger) (storage.Uploader, error) {
	if cfg.CloudinaryURL != "" {
		return storage.NewCloudinaryUploader(cfg.CloudinaryURL, logger)
	}
	return storage.NewLocalUploader(cfg.UploadDir, logger)
}
