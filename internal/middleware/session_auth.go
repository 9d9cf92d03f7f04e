// Package middleware provides Echo middleware for session authentication.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sagarsahu/creative-vault/backend/internal/auth"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const (
	// ContextKeyUser is where the authenticated user is stored on the
	// request context.
	ContextKeyUser = "user"
	// ContextKeySessionToken is where the raw bearer token is stored.
	ContextKeySessionToken = "sessionToken"
)

// SessionAuth resolves the Authorization bearer token to a live session and
// stores the user and token on the context. Requests without a valid session
// are rejected.
func SessionAuth(manager *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return models.NewNotAuthenticatedError("missing authorization header")
			}
			user, err := manager.CurrentUser(c.Request().Context(), token)
			if err != nil {
				return err
			}
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeySessionToken, token)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
