package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

func TestSignUpDuplicateEmail(t *testing.T) {
	v := newEnv(t)
	v.signUp("twice@example.com")

	rec := v.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{"email": "twice@example.com", "password": "password123"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateProfileStripsProfileID(t *testing.T) {
	v := newEnv(t)
	token := v.signUp("editor@example.com")

	rec := v.do(http.MethodPut, "/api/v1/profile", token, map[string]string{
		"displayName": "The Editor",
		"profileId":   "Hacked_Handle",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var user models.User
	v.decode(rec, &user)
	assert.Equal(t, "The Editor", user.DisplayName)
	assert.NotEqual(t, "Hacked_Handle", user.ProfileID)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	v := newEnv(t)

	rec := v.do(http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = v.do(http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]string{"email": testOwnerEmail})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	v := newEnv(t)

	rec := v.do(http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = v.do(http.MethodPost, "/api/v1/works", "", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
