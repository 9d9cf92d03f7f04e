package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/cache"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	logger := zap.NewNop()
	sessions, err := cache.New(cache.DefaultConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	users := repositories.NewUserRepository(blobstore.NewMemoryStore(logger))
	return NewManager(users, sessions, "test-secret", time.Hour, logger)
}

func TestSignUpDefaultsAndDuplicateEmail(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user, token, err := m.SignUp(ctx, "jane.doe@example.com", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.UID)
	assert.Equal(t, "jane.doe", user.DisplayName)

	// Second sign-up with the same email fails and leaves the first user
	// untouched.
	_, _, err = m.SignUp(ctx, "jane.doe@example.com", "other")
	assert.Equal(t, models.ErrKindDuplicateEmail, models.KindOf(err))

	again, err := m.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.UID, again.UID)
	assert.Equal(t, "jane.doe", again.DisplayName)
}

func TestSignInUnknownEmail(t *testing.T) {
	m := newTestManager(t)
	_, _, err := m.SignIn(context.Background(), "ghost@example.com", "pw")
	assert.Equal(t, models.ErrKindUserNotFound, models.KindOf(err))
}

func TestSignOutRevokesSession(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, token, err := m.SignUp(ctx, "reader@example.com", "pw123456")
	require.NoError(t, err)

	_, err = m.CurrentUser(ctx, token)
	require.NoError(t, err)

	require.NoError(t, m.SignOut(ctx, token))
	_, err = m.CurrentUser(ctx, token)
	assert.Equal(t, models.ErrKindNotAuthenticated, models.KindOf(err))
}

func TestUpdateProfileStripsProfileID(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user, token, err := m.SignUp(ctx, "reader@example.com", "pw123456")
	require.NoError(t, err)
	originalProfileID := user.ProfileID

	updated, err := m.UpdateProfile(ctx, token, models.UpdateProfileRequest{
		ProfileID: "hijacked",
		Bio:       "I read a lot.",
	})
	require.NoError(t, err)
	assert.Equal(t, originalProfileID, updated.ProfileID)
	assert.Equal(t, "I read a lot.", updated.Bio)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	m := newTestManager(t)
	_, err := m.UpdateProfile(context.Background(), "not-a-token", models.UpdateProfileRequest{Bio: "x"})
	assert.Equal(t, models.ErrKindNotAuthenticated, models.KindOf(err))
}

func TestForgotPassword(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, _, err := m.SignUp(ctx, "reader@example.com", "pw123456")
	require.NoError(t, err)

	assert.NoError(t, m.ForgotPassword(ctx, "reader@example.com"))
	err = m.ForgotPassword(ctx, "nobody@example.com")
	assert.Equal(t, models.ErrKindUserNotFound, models.KindOf(err))
}

func TestSubscribeDeliversCurrentStateThenChanges(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user, token, err := m.SignUp(ctx, "reader@example.com", "pw123456")
	require.NoError(t, err)

	var delivered []*models.User
	unsubscribe := m.Subscribe(token, func(u *models.User) {
		delivered = append(delivered, u)
	})

	// Initial state replayed synchronously on subscription.
	require.Len(t, delivered, 1)
	require.NotNil(t, delivered[0])
	assert.Equal(t, user.UID, delivered[0].UID)

	_, err = m.UpdateProfile(ctx, token, models.UpdateProfileRequest{DisplayName: "Jane"})
	require.NoError(t, err)
	require.Len(t, delivered, 2)
	assert.Equal(t, "Jane", delivered[1].DisplayName)

	require.NoError(t, m.SignOut(ctx, token))
	require.Len(t, delivered, 3)
	assert.Nil(t, delivered[2])

	unsubscribe()
	_, _, err = m.SignIn(ctx, "reader@example.com", "pw")
	require.NoError(t, err)
	assert.Len(t, delivered, 3, "no delivery after unsubscribe")
}

func TestSubscribeWithInvalidTokenReplaysAnonymous(t *testing.T) {
	m := newTestManager(t)

	var delivered []*models.User
	m.Subscribe("garbage", func(u *models.User) {
		delivered = append(delivered, u)
	})
	require.Len(t, delivered, 1)
	assert.Nil(t, delivered[0])
}
