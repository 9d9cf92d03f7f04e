package repositories

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const (
	seedOwnerUID   = "owner-001"
	seedReaderUID  = "reader-001"
	seedReaderName = "BookwormReader"
	seedWorkID     = "work-001"
)

// Seed populates each absent top-level blob with its sample content: the
// owner account, one work, one comment on it, the default site settings and
// one notification. Keys that already hold data are left untouched, so
// seeding is safe to run on every startup.
func Seed(ctx context.Context, store blobstore.Store, ownerEmail string, logger *zap.Logger) error {
	now := time.Now()

	if absent, err := keyAbsent(ctx, store, usersKey); err != nil {
		return err
	} else if absent {
		owner := models.User{
			UID:               seedOwnerUID,
			Email:             ownerEmail,
			DisplayName:       "Sagar Sahu",
			Bio:               "The creator of this vault, weaving tales of mystery, documentaries of truth, and articles of insight. Explore my world.",
			ProfileID:         "Admin_Sagar_Sahu",
			ProfilePictureURL: "https://picsum.photos/seed/sagar/200",
		}
		if err := store.Save(ctx, usersKey, map[string]models.User{owner.UID: owner}); err != nil {
			return err
		}
		logger.Info("seeded owner account", zap.String("email", ownerEmail))
	}

	if absent, err := keyAbsent(ctx, store, worksKey); err != nil {
		return err
	} else if absent {
		work := models.Work{
			ID:            seedWorkID,
			Title:         "The Crimson Cipher",
			Tagline:       "A tale of mystery and code.",
			Category:      models.CategoryStory,
			FileURL:       "#",
			FileName:      "crimson_cipher.pdf",
			UploadDate:    now,
			OwnerID:       seedOwnerUID,
			CoverImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", seedWorkID),
			ViewCount:     123,
			Likes:         0,
			LikeUserIDs:   []string{},
		}
		if err := store.Save(ctx, worksKey, map[string]models.Work{work.ID: work}); err != nil {
			return err
		}
	}

	if absent, err := keyAbsent(ctx, store, commentsKey); err != nil {
		return err
	} else if absent {
		comment := models.Comment{
			ID:        "comment-001",
			WorkID:    seedWorkID,
			UserID:    seedReaderUID,
			UserName:  seedReaderName,
			Text:      "This is an amazing start! Can't wait for the next chapter.",
			CreatedAt: now,
		}
		if err := store.Save(ctx, commentsKey, map[string][]models.Comment{seedWorkID: {comment}}); err != nil {
			return err
		}
	}

	if absent, err := keyAbsent(ctx, store, siteSettingsKey); err != nil {
		return err
	} else if absent {
		settings := models.SiteSettings{
			CoverPages: []string{
				"https://picsum.photos/seed/cover1/1920/1080",
				"https://picsum.photos/seed/cover2/1920/1080",
				"https://picsum.photos/seed/cover3/1920/1080",
			},
			Taglines: []string{
				"Weaving tales of mystery and code.",
				"Documenting the untold stories of truth.",
				"Crafting articles that spark insight.",
				"Where imagination meets the written word.",
				"Exploring worlds, one page at a time.",
				"The architect of narratives.",
				"Penning the future, remembering the past.",
				"A universe of stories awaits.",
				"From concept to creation.",
				"The journey of a thousand words begins here.",
			},
			SocialLinks: []models.SocialLink{
				{ID: "sl-1", Name: "Facebook", Icon: "Facebook", URL: "https://facebook.com"},
				{ID: "sl-2", Name: "Instagram", Icon: "Instagram", URL: "https://instagram.com"},
			},
		}
		if err := store.Save(ctx, siteSettingsKey, &settings); err != nil {
			return err
		}
	}

	if absent, err := keyAbsent(ctx, store, notificationsKey); err != nil {
		return err
	} else if absent {
		notification := models.Notification{
			ID:        "notif-001",
			UserID:    seedOwnerUID,
			Message:   fmt.Sprintf("%s commented on your work: \"The Crimson Cipher\"", seedReaderName),
			Link:      "/story/" + seedWorkID,
			Read:      false,
			CreatedAt: now.Add(-5 * time.Minute),
			Actor:     models.Actor{ID: seedReaderUID, Name: seedReaderName},
		}
		if err := store.Save(ctx, notificationsKey, []models.Notification{notification}); err != nil {
			return err
		}
	}

	return nil
}

func keyAbsent(ctx context.Context, store blobstore.Store, key string) (bool, error) {
	var raw any
	found, err := store.Load(ctx, key, &raw)
	if err != nil {
		return false, err
	}
	return !found, nil
}
