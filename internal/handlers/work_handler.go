package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/auth"
	"github.com/sagarsahu/creative-vault/backend/internal/cache"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

// viewMarkerTTL bounds how long a session's view marker suppresses repeat
// counting; roughly the lifetime of a browsing session.
const viewMarkerTTL = 12 * time.Hour

// WorkHandler handles HTTP requests related to works
type WorkHandler struct {
	works         repositories.WorkRepository
	comments      repositories.CommentRepository
	notifications repositories.NotificationRepository
	manager       *auth.Manager
	markers       cache.Cache
	ownerEmail    string
	logger        *zap.Logger
}

// NewWorkHandler creates a new WorkHandler
func NewWorkHandler(
	works repositories.WorkRepository,
	comments repositories.CommentRepository,
	notifications repositories.NotificationRepository,
	manager *auth.Manager,
	markers cache.Cache,
	ownerEmail string,
	logger *zap.Logger,
) *WorkHandler {
	return &WorkHandler{
		works:         works,
		comments:      comments,
		notifications: notifications,
		manager:       manager,
		markers:       markers,
		ownerEmail:    ownerEmail,
		logger:        logger,
	}
}

// RegisterPublicRoutes registers the read-only work routes
func (h *WorkHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/works", h.ListWorks)
	g.GET("/works/:id", h.GetWork)
	g.POST("/works/:id/view", h.RecordView)
}

// RegisterWorkRoutes registers the authenticated work routes
func (h *WorkHandler) RegisterWorkRoutes(g *echo.Group) {
	g.POST("/works", h.CreateWork)
	g.DELETE("/works/:id", h.DeleteWork)
	g.POST("/works/:id/like", h.ToggleLike)
}

// ListWorks returns all works, newest upload first
func (h *WorkHandler) ListWorks(c echo.Context) error {
	works, err := h.works.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, works)
}

// GetWork returns a single work by id
func (h *WorkHandler) GetWork(c echo.Context) error {
	work, err := h.works.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, work)
}

// CreateWork publishes a new work; owner only
func (h *WorkHandler) CreateWork(c echo.Context) error {
	user, err := requireOwner(c, h.ownerEmail)
	if err != nil {
		return err
	}

	var req models.CreateWorkRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}
	if !req.Category.Valid() {
		return models.NewValidationError("unknown category " + string(req.Category))
	}

	work := &models.Work{
		Title:         req.Title,
		Tagline:       req.Tagline,
		Category:      req.Category,
		FileURL:       req.FileURL,
		FileName:      req.FileName,
		CoverImageURL: req.CoverImageURL,
		OwnerID:       user.UID,
	}
	if err := h.works.Create(c.Request().Context(), work); err != nil {
		return err
	}
	h.logger.Info("work published", zap.String("id", work.ID), zap.String("title", work.Title))
	return c.JSON(http.StatusCreated, work)
}

// DeleteWork removes a work together with its comments and the
// notifications that reference it. The cascade is best-effort: a failure
// partway through is reported and whatever partial state resulted stands;
// there is no transaction to roll back.
func (h *WorkHandler) DeleteWork(c echo.Context) error {
	if _, err := requireOwner(c, h.ownerEmail); err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.works.GetByID(ctx, id); err != nil {
		return err
	}

	var firstErr error
	if err := h.works.Delete(ctx, id); err != nil {
		firstErr = err
	}
	if err := h.comments.DeleteByWorkID(ctx, id); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := h.notifications.DeleteByLink(ctx, "/story/"+id); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		h.logger.Error("work cascade delete incomplete", zap.String("id", id), zap.Error(firstErr))
		return firstErr
	}

	h.logger.Info("work deleted", zap.String("id", id))
	return c.NoContent(http.StatusNoContent)
}

// RecordView counts one view of a work. The counter itself applies
// unconditionally; for requests carrying a session token the handler keeps a
// per-session marker and skips repeat views, so a session bumps a work at
// most once. Anonymous views always count.
func (h *WorkHandler) RecordView(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	markerKey := ""
	if token := sessionToken(c); token != "" {
		if sessionID, err := h.manager.SessionID(ctx, token); err == nil {
			markerKey = "viewed:" + sessionID + ":" + id
			if _, seen := h.markers.Get(ctx, markerKey); seen {
				return c.NoContent(http.StatusNoContent)
			}
		}
	}

	if err := h.works.IncrementViewCount(ctx, id); err != nil {
		return err
	}
	if markerKey != "" {
		if err := h.markers.Set(ctx, markerKey, "1", viewMarkerTTL); err != nil {
			h.logger.Warn("failed to record view marker", zap.Error(err))
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleLike flips the session user's like on a work
func (h *WorkHandler) ToggleLike(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	work, err := h.works.ToggleLike(c.Request().Context(), c.Param("id"), user.UID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, work)
}
