package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

// publicProfile is the subset of a user record safe to expose to anyone.
type publicProfile struct {
	UID               string `json:"uid"`
	DisplayName       string `json:"displayName"`
	Bio               string `json:"bio"`
	ProfileID         string `json:"profileId"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

func toPublicProfile(user *models.User) publicProfile {
	return publicProfile{
		UID:               user.UID,
		DisplayName:       user.DisplayName,
		Bio:               user.Bio,
		ProfileID:         user.ProfileID,
		ProfilePictureURL: user.ProfilePictureURL,
	}
}

// UserHandler handles HTTP requests for public user profiles
type UserHandler struct {
	users      repositories.UserRepository
	ownerEmail string
	logger     *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users repositories.UserRepository, ownerEmail string, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, ownerEmail: ownerEmail, logger: logger}
}

// RegisterPublicRoutes registers the public profile routes
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:uid", h.GetUser)
	g.GET("/owner", h.GetOwner)
}

// GetUser returns a user's public profile
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.users.GetByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPublicProfile(user))
}

// GetOwner returns the site owner's public profile
func (h *UserHandler) GetOwner(c echo.Context) error {
	owner, err := h.users.GetByEmail(c.Request().Context(), h.ownerEmail)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPublicProfile(owner))
}
