package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
	"github.com/femwell/femwell-backend/internal/services"
)

// ForumPostGetter defines the interface that the service must implement.
type ForumPostGetter interface {
	GetPost(ctx context.Context, id int64) (*models.ForumPost, error)
}

// NewGetForumPostHandler returns an HTTP handler for post lookup by id.
// @Summary Get a forum post by id
// @Description Returns the full record. A non-numeric id behaves like a miss.
// @Tags forum-posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.ForumPost "Post found"
// @Failure 404 {object} handlers.APIError "Post not found"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /forum-posts/{id} [get]
func NewGetForumPostHandler(svc ForumPostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Forum post not found")
			return
		}

		post, err := svc.GetPost(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForumPostNotFound):
				writeError(w, http.StatusNotFound, "Forum post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to get forum post")
			}
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}
