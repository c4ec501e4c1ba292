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

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler for user lookup by id.
// @Summary Get a user by id
// @Description Returns the redacted user projection. A non-numeric id behaves like a miss.
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.CreateUserResponse "User found"
// @Failure 404 {object} handlers.APIError "User not found"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		user, err := svc.GetUser(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to get user")
			}
			return
		}

		writeJSON(w, http.StatusOK, CreateUserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
}
