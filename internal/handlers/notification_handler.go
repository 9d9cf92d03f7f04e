package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct {
	notifications repositories.NotificationRepository
	logger        *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications repositories.NotificationRepository, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

// RegisterNotificationRoutes registers the authenticated notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.GET("/notifications/unread-count", h.UnreadCount)
	g.POST("/notifications/read", h.MarkRead)
}

// ListNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	notifications, err := h.notifications.ListByRecipient(c.Request().Context(), user.UID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// UnreadCount returns the number of the caller's unread notifications
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	count, err := h.notifications.UnreadCount(c.Request().Context(), user.UID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}

// MarkRead marks the given notifications as read; ids the caller does not
// own, and ids that do not exist, are ignored.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req models.MarkNotificationsReadRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	if err := h.notifications.MarkRead(c.Request().Context(), user.UID, req.IDs); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
