// Package auth implements the session lifecycle: sign-up/sign-in/sign-out,
// profile updates, and a broadcast of auth-state changes to subscribers.
//
// A session is Anonymous or Authenticated(uid), identified by a signed token
// whose jti links to a server-side record, so signing out actually revokes
// the token. Passwords are accepted but never persisted or verified; the
// deployment trusts its single-site mock-auth contract and real credential
// security is out of scope.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/cache"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/repositories"
)

const sessionKeyPrefix = "session:"

// Subscriber receives the session's current user, or nil for Anonymous.
type Subscriber func(user *models.User)

// Manager owns the auth state machine and its broadcast contract.
type Manager struct {
	users      repositories.UserRepository
	sessions   cache.Cache
	jwtSecret  []byte
	sessionTTL time.Duration
	logger     *zap.Logger

	mu      sync.Mutex
	subs    map[string]map[int]Subscriber // session token -> subscriber set
	nextSub int
}

// NewManager creates a Manager.
func NewManager(users repositories.UserRepository, sessions cache.Cache, jwtSecret string, sessionTTL time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		users:      users,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		logger:     logger,
		subs:       make(map[string]map[int]Subscriber),
	}
}

// SignUp registers a new account and opens a session for it. Fails with
// DuplicateEmail if the email is already registered. The password is
// accepted but not stored.
func (m *Manager) SignUp(ctx context.Context, email, password string) (*models.User, string, error) {
	uid := "user-" + uuid.NewString()
	user := &models.User{
		UID:               uid,
		Email:             email,
		DisplayName:       emailLocalPart(email),
		ProfilePictureURL: fmt.Sprintf("https://picsum.photos/seed/%s/200", uid),
	}
	if err := m.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := m.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	m.broadcast(token, user)
	m.logger.Info("user signed up", zap.String("uid", user.UID))
	return user, token, nil
}

// SignIn opens a session for an existing account. Fails with UserNotFound
// if no account has the email. The password is accepted but not checked.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := m.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	token, err := m.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	m.broadcast(token, user)
	m.logger.Info("user signed in", zap.String("uid", user.UID))
	return user, token, nil
}

// SignOut revokes the session and broadcasts the Anonymous state to its
// subscribers.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	claims, err := m.parseToken(token)
	if err != nil {
		return err
	}
	if err := m.sessions.Delete(ctx, sessionKeyPrefix+claims.ID); err != nil {
		return models.NewStorageError("revoking session", err)
	}
	m.broadcast(token, nil)
	m.logger.Info("user signed out", zap.String("uid", claims.UID))
	return nil
}

// CurrentUser resolves a session token to its user. Any failure (bad
// signature, expiry, revoked record, missing user) reads as NotAuthenticated.
func (m *Manager) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := m.parseToken(token)
	if err != nil {
		return nil, err
	}
	if _, ok := m.sessions.Get(ctx, sessionKeyPrefix+claims.ID); !ok {
		return nil, models.NewNotAuthenticatedError("session expired or revoked")
	}
	user, err := m.users.GetByUID(ctx, claims.UID)
	if err != nil {
		return nil, models.NewNotAuthenticatedError("session user no longer exists")
	}
	return user, nil
}

// SessionID returns the stable identifier of the token's live session,
// usable as a per-session idempotence key.
func (m *Manager) SessionID(ctx context.Context, token string) (string, error) {
	claims, err := m.parseToken(token)
	if err != nil {
		return "", err
	}
	if _, ok := m.sessions.Get(ctx, sessionKeyPrefix+claims.ID); !ok {
		return "", models.NewNotAuthenticatedError("session expired or revoked")
	}
	return claims.ID, nil
}

// UpdateProfile merges the provided fields into the session's user record
// and re-broadcasts the updated user. ProfileID is immutable and silently
// stripped from the update.
func (m *Manager) UpdateProfile(ctx context.Context, token string, updates models.UpdateProfileRequest) (*models.User, error) {
	user, err := m.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	// updates.ProfileID intentionally ignored.
	if updates.DisplayName != "" {
		user.DisplayName = updates.DisplayName
	}
	if updates.Bio != "" {
		user.Bio = updates.Bio
	}
	if updates.ProfilePictureURL != "" {
		user.ProfilePictureURL = updates.ProfilePictureURL
	}

	if err := m.users.Update(ctx, user); err != nil {
		return nil, err
	}
	m.broadcast(token, user)
	return user, nil
}

// UpdatePassword requires a live session but has no persistence effect
// beyond the success result; there is no stored credential to change.
func (m *Manager) UpdatePassword(ctx context.Context, token, newPassword string) error {
	user, err := m.CurrentUser(ctx, token)
	if err != nil {
		return err
	}
	m.logger.Info("password update accepted", zap.String("uid", user.UID))
	return nil
}

// ForgotPassword fails with UserNotFound when the email is unknown and is
// otherwise a no-op success; no reset mail infrastructure exists here.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	if _, err := m.users.GetByEmail(ctx, email); err != nil {
		return err
	}
	m.logger.Info("password reset requested", zap.String("email", email))
	return nil
}

// Subscribe registers fn for the session's auth-state changes and returns an
// unsubscribe func. The current state is delivered synchronously before fn
// joins the broadcast list, so a late subscriber never misses the initial
// value.
func (m *Manager) Subscribe(token string, fn Subscriber) func() {
	user, err := m.CurrentUser(context.Background(), token)
	if err != nil {
		user = nil
	}
	fn(user)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	if m.subs[token] == nil {
		m.subs[token] = make(map[int]Subscriber)
	}
	m.subs[token][id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if set, ok := m.subs[token]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(m.subs, token)
			}
		}
	}
}

// broadcast synchronously delivers the session's new state to its
// subscribers.
func (m *Manager) broadcast(token string, user *models.User) {
	m.mu.Lock()
	subscribers := make([]Subscriber, 0, len(m.subs[token]))
	for _, fn := range m.subs[token] {
		subscribers = append(subscribers, fn)
	}
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(user)
	}
}

// openSession issues a signed token and its server-side record.
func (m *Manager) openSession(ctx context.Context, user *models.User) (string, error) {
	claims := &models.SessionClaims{
		UID:   user.UID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.jwtSecret)
	if err != nil {
		return "", err
	}
	if err := m.sessions.Set(ctx, sessionKeyPrefix+claims.ID, user.UID, m.sessionTTL); err != nil {
		return "", models.NewStorageError("recording session", err)
	}
	return token, nil
}

func (m *Manager) parseToken(token string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, models.NewNotAuthenticatedError("invalid session token")
	}
	return claims, nil
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
