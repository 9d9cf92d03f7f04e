package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

func TestGetSettingsIsPublicAndNormalized(t *testing.T) {
	v := newEnv(t)

	rec := v.do(http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings models.SiteSettings
	v.decode(rec, &settings)
	assert.Len(t, settings.Taglines, models.TaglineSlots)
	assert.NotNil(t, settings.CoverPages)
	assert.NotNil(t, settings.SocialLinks)
}

func TestUpdateSettingsOwnerOnly(t *testing.T) {
	v := newEnv(t)
	readerToken := v.signUp("reader3@example.com")

	rec := v.do(http.MethodPut, "/api/v1/settings", readerToken, models.SiteSettings{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateSettingsValidatesIcons(t *testing.T) {
	v := newEnv(t)
	ownerToken := v.signIn(testOwnerEmail)

	rec := v.do(http.MethodPut, "/api/v1/settings", ownerToken, models.SiteSettings{
		SocialLinks: []models.SocialLink{{ID: "sl-x", Name: "MySpace", Icon: "MySpace", URL: "https://myspace.com"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSettingsPadsTaglines(t *testing.T) {
	v := newEnv(t)
	ownerToken := v.signIn(testOwnerEmail)

	rec := v.do(http.MethodPut, "/api/v1/settings", ownerToken, models.SiteSettings{
		Taglines:    []string{"Only one"},
		SocialLinks: []models.SocialLink{{ID: "sl-1", Name: "Reddit", Icon: "Reddit", URL: "https://reddit.com"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.SiteSettings
	v.decode(rec, &updated)
	require.Len(t, updated.Taglines, models.TaglineSlots)
	assert.Equal(t, "Only one", updated.Taglines[0])
	assert.Equal(t, "", updated.Taglines[1])

	// The write sticks.
	rec = v.do(http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var persisted models.SiteSettings
	v.decode(rec, &persisted)
	assert.Equal(t, updated.Taglines, persisted.Taglines)
	assert.Len(t, persisted.SocialLinks, 1)
}
