package repositories

import (
	"context"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const siteSettingsKey = "site_settings"

// SettingsRepository defines the interface for the site settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings *models.SiteSettings) error
}

type blobSettingsRepository struct {
	store blobstore.Store
}

// NewSettingsRepository creates a SettingsRepository backed by store.
func NewSettingsRepository(store blobstore.Store) SettingsRepository {
	return &blobSettingsRepository{store: store}
}

// Get returns the settings document, normalized so taglines always hold
// exactly models.TaglineSlots entries and sequences are never nil. An absent
// document reads as empty defaults.
func (r *blobSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if _, err := r.store.Load(ctx, siteSettingsKey, &settings); err != nil {
		return nil, err
	}
	settings.Normalize()
	return &settings, nil
}

// Update replaces the settings document
func (r *blobSettingsRepository) Update(ctx context.Context, settings *models.SiteSettings) error {
	settings.Normalize()
	return r.store.Save(ctx, siteSettingsKey, settings)
}
