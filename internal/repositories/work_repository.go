package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const worksKey = "works"

// WorkRepository defines the interface for work data operations
type WorkRepository interface {
	Create(ctx context.Context, work *models.Work) error
	GetByID(ctx context.Context, id string) (*models.Work, error)
	List(ctx context.Context) ([]models.Work, error)
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, workID, userID string) (*models.Work, error)
}

// blobWorkRepository implements WorkRepository over the works blob, a map
// from id to record.
type blobWorkRepository struct {
	store blobstore.Store
}

// NewWorkRepository creates a WorkRepository backed by store.
func NewWorkRepository(store blobstore.Store) WorkRepository {
	return &blobWorkRepository{store: store}
}

func (r *blobWorkRepository) loadAll(ctx context.Context) (map[string]models.Work, error) {
	works := make(map[string]models.Work)
	if _, err := r.store.Load(ctx, worksKey, &works); err != nil {
		return nil, err
	}
	return works, nil
}

// Create stores a new work with generated id, upload timestamp and zeroed
// counters.
func (r *blobWorkRepository) Create(ctx context.Context, work *models.Work) error {
	works, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	work.ID = "work-" + uuid.NewString()
	work.UploadDate = time.Now()
	work.ViewCount = 0
	work.Likes = 0
	work.LikeUserIDs = []string{}
	works[work.ID] = *work
	return r.store.Save(ctx, worksKey, works)
}

// GetByID retrieves a work by id
func (r *blobWorkRepository) GetByID(ctx context.Context, id string) (*models.Work, error) {
	works, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	work, ok := works[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("no work with id %q", id))
	}
	return &work, nil
}

// List returns all works, newest upload first
func (r *blobWorkRepository) List(ctx context.Context) ([]models.Work, error) {
	works, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]models.Work, 0, len(works))
	for _, work := range works {
		list = append(list, work)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].UploadDate.After(list[j].UploadDate)
	})
	return list, nil
}

// Delete removes the work record; the caller cascades comments and
// notifications.
func (r *blobWorkRepository) Delete(ctx context.Context, id string) error {
	works, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := works[id]; !ok {
		return models.NewNotFoundError(fmt.Sprintf("no work with id %q", id))
	}
	delete(works, id)
	return r.store.Save(ctx, worksKey, works)
}

// IncrementViewCount adds one view, unconditionally. Per-session
// idempotence is the caller's responsibility.
func (r *blobWorkRepository) IncrementViewCount(ctx context.Context, id string) error {
	works, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	work, ok := works[id]
	if !ok {
		return models.NewNotFoundError(fmt.Sprintf("no work with id %q", id))
	}
	work.ViewCount++
	works[id] = work
	return r.store.Save(ctx, worksKey, works)
}

// ToggleLike adds userID to the work's like set if absent, removes it if
// present. Likes is recomputed from the set so the two can never diverge or
// go negative.
func (r *blobWorkRepository) ToggleLike(ctx context.Context, workID, userID string) (*models.Work, error) {
	works, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	work, ok := works[workID]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("no work with id %q", workID))
	}

	liked := false
	filtered := work.LikeUserIDs[:0:0]
	for _, uid := range work.LikeUserIDs {
		if uid == userID {
			liked = true
			continue
		}
		filtered = append(filtered, uid)
	}
	if !liked {
		filtered = append(filtered, userID)
	}
	if filtered == nil {
		filtered = []string{}
	}
	work.LikeUserIDs = filtered
	work.Likes = len(filtered)

	works[workID] = work
	return &work, r.store.Save(ctx, worksKey, works)
}
