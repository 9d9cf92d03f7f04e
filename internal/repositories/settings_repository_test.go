package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

func TestGetSettingsOnEmptyStoreReturnsNormalizedDefaults(t *testing.T) {
	repo := NewSettingsRepository(blobstore.NewMemoryStore(zap.NewNop()))

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, settings.Taglines, models.TaglineSlots)
	assert.NotNil(t, settings.CoverPages)
	assert.NotNil(t, settings.SocialLinks)
}

func TestGetSettingsBackfillsShortTaglines(t *testing.T) {
	store := blobstore.NewMemoryStore(zap.NewNop())
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, siteSettingsKey, &models.SiteSettings{
		Taglines: []string{"one", "two"},
	}))

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, settings.Taglines, models.TaglineSlots)
	assert.Equal(t, "one", settings.Taglines[0])
	assert.Equal(t, "two", settings.Taglines[1])
	assert.Equal(t, "", settings.Taglines[2])
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(blobstore.NewMemoryStore(zap.NewNop()))
	ctx := context.Background()

	in := &models.SiteSettings{
		CoverPages: []string{"https://example.com/a.jpg"},
		Taglines:   []string{"fresh"},
		SocialLinks: []models.SocialLink{
			{ID: "sl-1", Name: "YouTube", Icon: "YouTube", URL: "https://youtube.com"},
		},
	}
	require.NoError(t, repo.Update(ctx, in))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.CoverPages, got.CoverPages)
	assert.Len(t, got.Taglines, models.TaglineSlots)
	assert.Equal(t, in.SocialLinks, got.SocialLinks)
}

func TestSeedRunsOnceAndKeepsExistingData(t *testing.T) {
	store := blobstore.NewMemoryStore(zap.NewNop())
	ctx := context.Background()
	logger := zap.NewNop()

	require.NoError(t, Seed(ctx, store, "sagar.sahu@example.com", logger))

	users := NewUserRepository(store)
	owner, err := users.GetByEmail(ctx, "sagar.sahu@example.com")
	require.NoError(t, err)
	assert.Equal(t, "owner-001", owner.UID)

	works := NewWorkRepository(store)
	list, err := works.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "The Crimson Cipher", list[0].Title)

	settings, err := NewSettingsRepository(store).Get(ctx)
	require.NoError(t, err)
	assert.Len(t, settings.Taglines, models.TaglineSlots)
	assert.NotEmpty(t, settings.Taglines[0])

	notifications, err := NewNotificationRepository(store).ListByRecipient(ctx, owner.UID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)

	// Mutate, reseed, and check nothing is clobbered.
	reader := &models.User{Email: "reader@example.com"}
	require.NoError(t, users.Create(ctx, reader))
	require.NoError(t, works.Delete(ctx, list[0].ID))

	require.NoError(t, Seed(ctx, store, "sagar.sahu@example.com", logger))

	_, err = users.GetByEmail(ctx, "reader@example.com")
	assert.NoError(t, err, "reseeding must not clobber existing users")
	list, err = works.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "reseeding must not resurrect deleted works")
}
