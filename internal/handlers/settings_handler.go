package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

// SettingsHandler handles HTTP requests for the site settings singleton
type SettingsHandler struct {
	settings   repositories.SettingsRepository
	ownerEmail string
	logger     *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settings repositories.SettingsRepository, ownerEmail string, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, ownerEmail: ownerEmail, logger: logger}
}

// RegisterPublicRoutes registers the read-only settings route
func (h *SettingsHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/settings", h.GetSettings)
}

// RegisterSettingsRoutes registers the owner-only settings route
func (h *SettingsHandler) RegisterSettingsRoutes(g *echo.Group) {
	g.PUT("/settings", h.UpdateSettings)
}

// GetSettings returns the current site settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the site settings document; owner only
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	if _, err := requireOwner(c, h.ownerEmail); err != nil {
		return err
	}

	var settings models.SiteSettings
	if err := c.Bind(&settings); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	for _, link := range settings.SocialLinks {
		if !models.SocialIcons[link.Icon] {
			return models.NewValidationError("unknown social icon: " + link.Icon)
		}
	}

	if err := h.settings.Update(c.Request().Context(), &settings); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &settings)
}
