package handlers

import (
	"context"
	"net/http"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// ForumPostLister defines the interface that the service must implement.
type ForumPostLister interface {
	ListPosts(ctx context.Context, category string) ([]models.ForumPost, error)
}

// NewListForumPostsHandler returns an HTTP handler for the forum listing.
// @Summary List forum posts
// @Description Without a category the list is newest-first; with a category filter posts come back in insertion order. An unknown category yields an empty array.
// @Tags forum-posts
// @Produce json
// @Param category query string false "Exact category match"
// @Success 200 {array} models.ForumPost "Posts"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /forum-posts [get]
func NewListForumPostsHandler(svc ForumPostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		posts, err := svc.ListPosts(r.Context(), category)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get forum posts")
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}
