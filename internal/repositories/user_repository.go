package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const usersKey = "users"

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// blobUserRepository implements UserRepository over the users blob, a map
// from uid to record.
type blobUserRepository struct {
	store blobstore.Store
}

// NewUserRepository creates a UserRepository backed by store.
func NewUserRepository(store blobstore.Store) UserRepository {
	return &blobUserRepository{store: store}
}

func (r *blobUserRepository) loadAll(ctx context.Context) (map[string]models.User, error) {
	users := make(map[string]models.User)
	if _, err := r.store.Load(ctx, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByUID retrieves a user by uid
func (r *blobUserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users[uid]
	if !ok {
		return nil, models.NewUserNotFoundError(fmt.Sprintf("no user with uid %q", uid))
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *blobUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, models.NewUserNotFoundError(fmt.Sprintf("no user with email %q", email))
}

// Create stores a new user, generating a uid when absent. Fails with
// DuplicateEmail if the email is already registered.
func (r *blobUserRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.NewDuplicateEmailError(user.Email)
		}
	}
	if user.UID == "" {
		user.UID = "user-" + uuid.NewString()
	}
	users[user.UID] = *user
	return r.store.Save(ctx, usersKey, users)
}

// Update replaces the record at the user's uid
func (r *blobUserRepository) Update(ctx context.Context, user *models.User) error {
	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := users[user.UID]; !ok {
		return models.NewUserNotFoundError(fmt.Sprintf("no user with uid %q", user.UID))
	}
	users[user.UID] = *user
	return r.store.Save(ctx, usersKey, users)
}
