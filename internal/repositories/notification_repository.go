package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const notificationsKey = "notifications"

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, userID string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, ids []string) error
	DeleteByLink(ctx context.Context, link string) error
}

// blobNotificationRepository implements NotificationRepository over the
// notifications blob, a flat list with the newest entry first.
type blobNotificationRepository struct {
	store blobstore.Store
}

// NewNotificationRepository creates a NotificationRepository backed by store.
func NewNotificationRepository(store blobstore.Store) NotificationRepository {
	return &blobNotificationRepository{store: store}
}

func (r *blobNotificationRepository) loadAll(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if _, err := r.store.Load(ctx, notificationsKey, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Create prepends a new unread notification with generated id and timestamp
func (r *blobNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	notification.ID = "notif-" + uuid.NewString()
	notification.CreatedAt = time.Now()
	notification.Read = false
	all = append([]models.Notification{*notification}, all...)
	return r.store.Save(ctx, notificationsKey, all)
}

// ListByRecipient returns the user's notifications, newest first
func (r *blobNotificationRepository) ListByRecipient(ctx context.Context, userID string) ([]models.Notification, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]models.Notification, 0)
	for _, n := range all {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// UnreadCount returns how many of the user's notifications are unread
func (r *blobNotificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead sets read=true on each listed notification belonging to userID;
// unknown ids and other users' notifications are ignored.
func (r *blobNotificationRepository) MarkRead(ctx context.Context, userID string, ids []string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	changed := false
	for i := range all {
		if all[i].UserID == userID && wanted[all[i].ID] && !all[i].Read {
			all[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.store.Save(ctx, notificationsKey, all)
}

// DeleteByLink removes every notification pointing at link; part of the
// delete-work cascade.
func (r *blobNotificationRepository) DeleteByLink(ctx context.Context, link string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	kept := all[:0:0]
	for _, n := range all {
		if n.Link != link {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	if kept == nil {
		kept = []models.Notification{}
	}
	return r.store.Save(ctx, notificationsKey, kept)
}
