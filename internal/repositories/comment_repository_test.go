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

func TestCommentLifecycle(t *testing.T) {
	repo := NewCommentRepository(blobstore.NewMemoryStore(zap.NewNop()))
	ctx := context.Background()

	first := &models.Comment{WorkID: "work-1", UserID: "u1", UserName: "Reader", Text: "first"}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Comment{WorkID: "work-1", UserID: "u2", UserName: "Other", Text: "second"}
	require.NoError(t, repo.Create(ctx, second))

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list, err := repo.ListByWorkID(ctx, "work-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, "work-1", first.ID))
	list, err = repo.ListByWorkID(ctx, "work-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	// Deleting an absent comment or work is a no-op.
	require.NoError(t, repo.Delete(ctx, "work-1", "comment-nope"))
	require.NoError(t, repo.Delete(ctx, "work-nope", "comment-nope"))

	require.NoError(t, repo.DeleteByWorkID(ctx, "work-1"))
	list, err = repo.ListByWorkID(ctx, "work-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationMarkReadAndDeleteByLink(t *testing.T) {
	repo := NewNotificationRepository(blobstore.NewMemoryStore(zap.NewNop()))
	ctx := context.Background()

	a := &models.Notification{UserID: "owner-001", Message: "m1", Link: "/story/work-1", Actor: models.Actor{ID: "u1", Name: "Reader"}}
	b := &models.Notification{UserID: "owner-001", Message: "m2", Link: "/story/work-2", Actor: models.Actor{ID: "u2", Name: "Other"}}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	count, err := repo.UnreadCount(ctx, "owner-001")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.MarkRead(ctx, "owner-001", []string{a.ID, "notif-unknown"}))
	count, err = repo.UnreadCount(ctx, "owner-001")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteByLink(ctx, "/story/work-1"))
	list, err := repo.ListByRecipient(ctx, "owner-001")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
