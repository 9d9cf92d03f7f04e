// Package router wires handlers, middleware, and the shared error handler
// onto an Echo instance.
package router

import (
	"errors"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/auth"
	"github.com/sagarsahu/creative-vault/backend/internal/cache"
	"github.com/sagarsahu/creative-vault/backend/internal/handlers"
	"github.com/sagarsahu/creative-vault/backend/internal/middleware"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
	"github.com/sagarsahu/creative-vault/backend/internal/storage"
)

// Deps collects everything the route tree needs.
type Deps struct {
	Users         repositories.UserRepository
	Works         repositories.WorkRepository
	Comments      repositories.CommentRepository
	Notifications repositories.NotificationRepository
	Settings      repositories.SettingsRepository
	Manager       *auth.Manager
	Cache         cache.Cache
	Uploader      storage.Uploader
	FirebaseAuth  *fbauth.Client
	OwnerEmail    string
	Logger        *zap.Logger
}

// SetupRoutes configures all application routes and the error handler.
func SetupRoutes(e *echo.Echo, deps Deps) {
	e.HTTPErrorHandler = errorHandler(deps.Logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Serve files stored by the local uploader.
	if local, ok := deps.Uploader.(*storage.LocalUploader); ok {
		e.Static("/uploads", local.Dir())
	}

	authHandler := handlers.NewAuthHandler(deps.Manager, deps.Users, deps.FirebaseAuth, deps.Logger)
	userHandler := handlers.NewUserHandler(deps.Users, deps.OwnerEmail, deps.Logger)
	workHandler := handlers.NewWorkHandler(deps.Works, deps.Comments, deps.Notifications, deps.Manager, deps.Cache, deps.OwnerEmail, deps.Logger)
	commentHandler := handlers.NewCommentHandler(deps.Comments, deps.Works, deps.Notifications, deps.OwnerEmail, deps.Logger)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications, deps.Logger)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, deps.OwnerEmail, deps.Logger)
	uploadHandler := handlers.NewUploadHandler(deps.Uploader, deps.Logger)

	// Anyone may browse works, comments, profiles, and the site settings.
	public := e.Group("/api/v1")
	userHandler.RegisterPublicRoutes(public)
	workHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterPublicRoutes(public)
	settingsHandler.RegisterPublicRoutes(public)

	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)

	// Everything below requires a live session.
	api := e.Group("/api/v1")
	api.Use(middleware.SessionAuth(deps.Manager))

	authHandler.RegisterSessionRoutes(api)
	workHandler.RegisterWorkRoutes(api)
	commentHandler.RegisterCommentRoutes(api)
	notificationHandler.RegisterNotificationRoutes(api)
	settingsHandler.RegisterSettingsRoutes(api)
	uploadHandler.RegisterUploadRoutes(api)
}

// errorHandler renders AppErrors as {"error":{"kind","message"}} with their
// mapped status, passes Echo's own HTTP errors through, and hides everything
// else behind a 500.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *models.AppError
		if errors.As(err, &appErr) {
			if appErr.StatusCode() >= http.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			writeJSON(c, appErr.StatusCode(), map[string]any{
				"error": map[string]string{
					"kind":    string(appErr.Kind),
					"message": appErr.Message,
				},
			})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			writeJSON(c, httpErr.Code, map[string]any{
				"error": map[string]any{"message": httpErr.Message},
			})
			return
		}

		logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		writeJSON(c, http.StatusInternalServerError, map[string]any{
			"error": map[string]string{"message": "internal server error"},
		})
	}
}

func writeJSON(c echo.Context, status int, body any) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
