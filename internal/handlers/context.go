package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

// Context keys populated by middleware.SessionAuth.
const (
	ContextKeyUser         = "user"
	ContextKeySessionToken = "sessionToken"
)

var validate = validator.New()

// currentUser returns the authenticated user placed in the context by the
// session middleware.
func currentUser(c echo.Context) (*models.User, error) {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok || user == nil {
		return nil, models.NewNotAuthenticatedError("sign in required")
	}
	return user, nil
}

// sessionToken returns the raw session token for the request, from the
// middleware when present or straight from the Authorization header on
// optionally-authenticated routes. Empty when anonymous.
func sessionToken(c echo.Context) string {
	if token, ok := c.Get(ContextKeySessionToken).(string); ok && token != "" {
		return token
	}
	return bearerToken(c)
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// requireOwner checks the session user against the configured owner account.
func requireOwner(c echo.Context, ownerEmail string) (*models.User, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(user.Email, ownerEmail) {
		return nil, models.NewForbiddenError("only the vault owner may do this")
	}
	return user, nil
}
