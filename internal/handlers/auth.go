package handlers

import (
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/auth"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	manager      *auth.Manager
	users        repositories.UserRepository
	firebaseAuth *fbauth.Client // nil when Firebase is not configured
	logger       *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(manager *auth.Manager, users repositories.UserRepository, firebaseAuth *fbauth.Client, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		manager:      manager,
		users:        users,
		firebaseAuth: firebaseAuth,
		logger:       logger,
	}
}

// RegisterAuthRoutes registers the unauthenticated auth routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/forgot-password", h.ForgotPassword)
	if h.firebaseAuth != nil {
		g.POST("/firebase-login", h.FirebaseLogin)
	}
}

// RegisterSessionRoutes registers routes that require a session
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/signout", h.SignOut)
	g.GET("/auth/me", h.Me)
	g.PUT("/profile", h.UpdateProfile)
	g.PUT("/password", h.UpdatePassword)
}

// SignUp registers a new account and opens a session
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, token, err := h.manager.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": user, "token": token})
}

// SignIn opens a session for an existing account
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, token, err := h.manager.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user, "token": token})
}

// SignOut revokes the current session
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.manager.SignOut(c.Request().Context(), sessionToken(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the session's user
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile merges a partial profile update into the session's user
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := h.manager.UpdateProfile(c.Request().Context(), sessionToken(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePassword accepts a password change for the session's user
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	if err := h.manager.UpdatePassword(c.Request().Context(), sessionToken(c), req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ForgotPassword accepts a password reset request for a known email
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	if err := h.manager.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// FirebaseLogin verifies a Firebase ID token and bridges it to a local
// session, creating the account on first login.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return models.NewValidationError("invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError(err.Error())
	}

	ctx := c.Request().Context()
	token, err := h.firebaseAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return models.NewNotAuthenticatedError("invalid firebase ID token")
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return models.NewValidationError("firebase token carries no email")
	}

	if _, err := h.users.GetByEmail(ctx, email); err != nil {
		if models.KindOf(err) != models.ErrKindUserNotFound {
			return err
		}
		newUser := &models.User{UID: "user-" + token.UID, Email: email}
		if name, ok := token.Claims["name"].(string); ok {
			newUser.DisplayName = name
		}
		if err := h.users.Create(ctx, newUser); err != nil {
			return err
		}
		h.logger.Info("created account from firebase login", zap.String("uid", newUser.UID))
	}

	// Sessions are opened by email; the mock-auth contract never checks a
	// credential, Firebase already did.
	user, sessionTok, err := h.manager.SignIn(ctx, email, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user, "token": sessionTok})
}
