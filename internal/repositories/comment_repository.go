package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sagarsahu/creative-vault/backend/internal/blobstore"
	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const commentsKey = "comments"

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByWorkID(ctx context.Context, workID string) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, workID, commentID string) error
	DeleteByWorkID(ctx context.Context, workID string) error
}

// blobCommentRepository implements CommentRepository over the comments blob,
// a map from work id to comment list.
type blobCommentRepository struct {
	store blobstore.Store
}

// NewCommentRepository creates a CommentRepository backed by store.
func NewCommentRepository(store blobstore.Store) CommentRepository {
	return &blobCommentRepository{store: store}
}

func (r *blobCommentRepository) loadAll(ctx context.Context) (map[string][]models.Comment, error) {
	comments := make(map[string][]models.Comment)
	if _, err := r.store.Load(ctx, commentsKey, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByWorkID returns the work's comments, newest first
func (r *blobCommentRepository) ListByWorkID(ctx context.Context, workID string) ([]models.Comment, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	list := append([]models.Comment{}, all[workID]...)
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Create appends a new comment with generated id and timestamp
func (r *blobCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	comment.ID = "comment-" + uuid.NewString()
	comment.CreatedAt = time.Now()
	all[comment.WorkID] = append(all[comment.WorkID], *comment)
	return r.store.Save(ctx, commentsKey, all)
}

// Delete removes one comment from the work's list; no-op if absent
func (r *blobCommentRepository) Delete(ctx context.Context, workID, commentID string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	list, ok := all[workID]
	if !ok {
		return nil
	}
	kept := list[:0:0]
	for _, c := range list {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	all[workID] = kept
	return r.store.Save(ctx, commentsKey, all)
}

// DeleteByWorkID removes every comment for the work; part of the
// delete-work cascade.
func (r *blobCommentRepository) DeleteByWorkID(ctx context.Context, workID string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[workID]; !ok {
		return nil
	}
	delete(all, workID)
	return r.store.Save(ctx, commentsKey, all)
}
