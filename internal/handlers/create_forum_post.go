package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
	"github.com/femwell/femwell-backend/internal/validation"
)

// ForumPostCreator defines the interface that the service must implement.
type ForumPostCreator interface {
	CreatePost(ctx context.Context, post models.ForumPost) (*models.ForumPost, error)
}

// CreateForumPostRequest represents the JSON body for a new forum post.
// Like and reply counters are server-owned and cannot be set here.
// swagger:model CreateForumPostRequest
type CreateForumPostRequest struct {
	// Owning user id, omit for anonymous posting
	// example: 1
	UserID *int64 `json:"userId"`

	// Post title
	// required: true
	// example: Tips for managing PCOS naturally?
	Title string `json:"title" validate:"required"`

	// Post body
	// required: true
	Content string `json:"content" validate:"required"`

	// Category, exact string from the fixed set
	// required: true
	// example: General Discussion
	Category string `json:"category" validate:"required"`
}

// NewCreateForumPostHandler returns an HTTP handler for forum posting.
// @Summary Create a forum post
// @Description Persists a post with like and reply counters initialized to zero.
// @Tags forum-posts
// @Accept json
// @Produce json
// @Param createForumPostRequest body handlers.CreateForumPostRequest true "New post"
// @Success 200 {object} models.ForumPost "Stored record"
// @Failure 400 {object} handlers.APIError "Invalid payload"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /forum-posts [post]
func NewCreateForumPostHandler(svc ForumPostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateForumPostRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid post data", validation.DecodeErrors(err)...)
			return
		}

		if fieldErrs := validation.Validate(req); len(fieldErrs) > 0 {
			writeError(w, http.StatusBadRequest, "Invalid post data", fieldErrs...)
			return
		}

		post, err := svc.CreatePost(r.Context(), models.ForumPost{
			UserID:   req.UserID,
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create forum post")
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}
