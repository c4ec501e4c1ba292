package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

type ForumPostReadRepository struct {
	db *sqlx.DB
}

func NewForumPostReadRepository(db *sqlx.DB) *ForumPostReadRepository {
	return &ForumPostReadRepository{db: db}
}

// List returns forum posts. Without a category filter posts come back newest
// first; with a filter they come back in insertion order. The asymmetry is
// long-standing observed behavior and is pinned by tests.
func (r *ForumPostReadRepository) List(ctx context.Context, category string) ([]models.ForumPost, error) {
	query := `
		SELECT id, user_id, title, content, category, likes, replies, created_at
		FROM forum_posts
		ORDER BY created_at DESC
	`
	args := []any{}

	if category != "" {
		query = `
			SELECT id, user_id, title, content, category, likes, replies, created_at
			FROM forum_posts
			WHERE category = ?
			ORDER BY id
		`
		args = append(args, category)
	}

	posts := []models.ForumPost{}
	err := r.db.SelectContext(ctx, &posts, r.db.Rebind(query), args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *ForumPostReadRepository) GetByID(ctx context.Context, id int64) (*models.ForumPost, error) {
	const query = `
		SELECT id, user_id, title, content, category, likes, replies, created_at
		FROM forum_posts
		WHERE id = ?
	`

	var post models.ForumPost
	err := r.db.GetContext(ctx, &post, r.db.Rebind(query), id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

type ForumPostWriteRepository struct {
	db *sqlx.DB
}

func NewForumPostWriteRepository(db *sqlx.DB) *ForumPostWriteRepository {
	return &ForumPostWriteRepository{db: db}
}

// Save inserts a forum post with the like and reply counters it was given.
// Callers creating user posts must zero the counters first; only seed data
// carries nonzero values.
func (r *ForumPostWriteRepository) Save(ctx context.Context, post models.ForumPost) (*models.ForumPost, error) {
	const query = `
		INSERT INTO forum_posts (user_id, title, content, category, likes, replies, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	post.CreatedAt = time.Now()

	args := []any{post.UserID, post.Title, post.Content, post.Category, post.Likes, post.Replies, post.CreatedAt}

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&post.ID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}
