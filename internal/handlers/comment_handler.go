package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	comments      repositories.CommentRepository
	works         repositories.WorkRepository
	notifications repositories.NotificationRepository
	ownerEmail    string
	logger        *zap.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	comments repositories.CommentRepository,
	works repositories.WorkRepository,
	notifications repositories.NotificationRepository,
	ownerEmail string,
	logger *zap.Logger,
) *CommentHandler {
	return &CommentHandler{
		comments:      comments,
		works:         works,
		notifications: notifications,
		ownerEmail:    ownerEmail,
		logger:        logger,
	}
}

// RegisterPublicRoutes registers the read-only comment routes
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/works/:id/comments", h.ListComments)
}

// RegisterCommentRoutes registers the authenticated comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/works/:id/comments", h.CreateComment)
	g.DELETE("/works/:id/comments/:comment_id", h.DeleteComment)
}

// ListComments returns a work's comments, newest first
func (h *CommentHandler) ListComments(c echo.Context) error {
	ctx := c.Request().Context()
	workID := c.Param("id")
	if _, err := h.works.GetByID(ctx, workID); err != nil {
		return err
	}
	comments, err := h.comments.ListByWorkID(ctx, workID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// CreateComment posts a comment on a work and notifies the work's owner,
// unless the commenter is the owner.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	ctx := c.Request().Context()
	work, err := h.works.GetByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	comment := &models.Comment{
		WorkID:   work.ID,
		UserID:   user.UID,
		UserName: user.DisplayName,
		Text:     req.Text,
	}
	if err := h.comments.Create(ctx, comment); err != nil {
		return err
	}

	if work.OwnerID != user.UID {
		notification := &models.Notification{
			UserID:  work.OwnerID,
			Message: fmt.Sprintf("%s commented on your work: %q", comment.UserName, work.Title),
			Link:    "/story/" + work.ID,
			Actor:   models.Actor{ID: user.UID, Name: comment.UserName},
		}
		if err := h.notifications.Create(ctx, notification); err != nil {
			// The comment is already stored; losing the notification is the
			// lesser failure.
			h.logger.Error("failed to notify work owner", zap.String("work", work.ID), zap.Error(err))
		}
	}

	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes a comment from a work; owner only, no-op if the
// comment is already gone.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	if _, err := requireOwner(c, h.ownerEmail); err != nil {
		return err
	}
	if err := h.comments.Delete(c.Request().Context(), c.Param("id"), c.Param("comment_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
