package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

func (v *env) unreadCount(token string) int {
	v.t.Helper()
	rec := v.do(http.MethodGet, "/api/v1/notifications/unread-count", token, nil)
	require.Equal(v.t, http.StatusOK, rec.Code)
	var resp map[string]int
	v.decode(rec, &resp)
	return resp["count"]
}

func TestCommentNotifiesOwner(t *testing.T) {
	v := newEnv(t)
	ownerToken := v.signIn(testOwnerEmail)
	readerToken := v.signUp("commenter@example.com")

	before := v.unreadCount(ownerToken)

	rec := v.do(http.MethodPost, "/api/v1/works/work-001/comments", readerToken, map[string]string{"text": "Loved it!"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var comment models.Comment
	v.decode(rec, &comment)
	assert.Equal(t, "work-001", comment.WorkID)
	assert.NotEmpty(t, comment.ID)

	assert.Equal(t, before+1, v.unreadCount(ownerToken))

	rec = v.do(http.MethodGet, "/api/v1/notifications", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []models.Notification
	v.decode(rec, &notifications)
	require.NotEmpty(t, notifications)
	newest := notifications[0]
	assert.Contains(t, newest.Message, "commented on your work")
	assert.Contains(t, newest.Message, "The Crimson Cipher")
	assert.Equal(t, "/story/work-001", newest.Link)
	assert.False(t, newest.Read)
}

func TestOwnCommentDoesNotNotify(t *testing.T) {
	v := newEnv(t)
	ownerToken := v.signIn(testOwnerEmail)

	before := v.unreadCount(ownerToken)
	rec := v.do(http.MethodPost, "/api/v1/works/work-001/comments", ownerToken, map[string]string{"text": "Author's note."})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, before, v.unreadCount(ownerToken))
}

func TestCommentOnMissingWork(t *testing.T) {
	v := newEnv(t)
	token := v.signUp("ghost@example.com")

	rec := v.do(http.MethodPost, "/api/v1/works/work-999/comments", token, map[string]string{"text": "Hello?"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	v := newEnv(t)
	readerToken := v.signUp("reader2@example.com")
	ownerToken := v.signIn(testOwnerEmail)

	rec := v.do(http.MethodDelete, "/api/v1/works/work-001/comments/comment-001", readerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = v.do(http.MethodDelete, "/api/v1/works/work-001/comments/comment-001", ownerToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = v.do(http.MethodGet, "/api/v1/works/work-001/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []models.Comment
	v.decode(rec, &comments)
	assert.Empty(t, comments)

	// Deleting again is a quiet no-op.
	rec = v.do(http.MethodDelete, "/api/v1/works/work-001/comments/comment-001", ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMarkNotificationsRead(t *testing.T) {
	v := newEnv(t)
	ownerToken := v.signIn(testOwnerEmail)

	rec := v.do(http.MethodGet, "/api/v1/notifications", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []models.Notification
	v.decode(rec, &notifications)
	require.NotEmpty(t, notifications)

	ids := []string{notifications[0].ID, "notif-unknown"}
	rec = v.do(http.MethodPost, "/api/v1/notifications/read", ownerToken, map[string]any{"ids": ids})
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Zero(t, v.unreadCount(ownerToken))
}

func TestNotificationsAreScopedToRecipient(t *testing.T) {
	v := newEnv(t)
	readerToken := v.signUp("nosy@example.com")

	rec := v.do(http.MethodGet, "/api/v1/notifications", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []models.Notification
	v.decode(rec, &notifications)
	assert.Empty(t, notifications)

	// Another user's ids cannot be marked read from this session.
	rec = v.do(http.MethodPost, "/api/v1/notifications/read", readerToken, map[string]any{"ids": []string{"notif-001"}})
	require.Equal(t, http.StatusNoContent, rec.Code)
	ownerToken := v.signIn(testOwnerEmail)
	assert.Equal(t, 1, v.unreadCount(ownerToken))
}
