package services

import (
	"context"
	"errors"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// ErrForumPostNotFound is returned when a post lookup by id finds nothing.
var ErrForumPostNotFound = errors.New("forum post not found")

// ForumPostWriter defines write operations for forum posts.
type ForumPostWriter interface {
	Save(ctx context.Context, post models.ForumPost) (*models.ForumPost, error)
}

// ForumPostReader defines read operations for forum posts.
type ForumPostReader interface {
	List(ctx context.Context, category string) ([]models.ForumPost, error)
	GetByID(ctx context.Context, id int64) (*models.ForumPost, error)
}

// ForumService handles community posts. There is no path that increments the
// like or reply counters; user-created posts keep them at zero.
type ForumService struct {
	writer ForumPostWriter
	reader ForumPostReader
}

// NewForumService creates a new ForumService instance.
func NewForumService(reader ForumPostReader, writer ForumPostWriter) *ForumService {
	return &ForumService{
		writer: writer,
		reader: reader,
	}
}

// CreatePost stores a new post. The counters are server-controlled and are
// forced to zero regardless of what the caller put in the model.
func (svc *ForumService) CreatePost(ctx context.Context, post models.ForumPost) (*models.ForumPost, error) {
	post.Likes = 0
	post.Replies = 0

	created, err := svc.writer.Save(ctx, post)
	if err != nil {
		logger.Log.Errorw("failed to save forum post", "err", err)
		return nil, err
	}

	return created, nil
}

// ListPosts returns posts, optionally filtered by exact category match. An
// empty category means no filter.
func (svc *ForumService) ListPosts(ctx context.Context, category string) ([]models.ForumPost, error) {
	posts, err := svc.reader.List(ctx, category)
	if err != nil {
		logger.Log.Errorw("failed to list forum posts", "category", category, "err", err)
		return nil, err
	}

	return posts, nil
}

// GetPost looks up a single post by id.
func (svc *ForumService) GetPost(ctx context.Context, id int64) (*models.ForumPost, error) {
	post, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get forum post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrForumPostNotFound
	}

	return post, nil
}
