package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
	"github.com/femwell/femwell-backend/internal/services"
	"github.com/femwell/femwell-backend/internal/validation"
)

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, user models.User) (*models.User, error)
}

// CreateUserRequest represents the JSON body for signup
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	// example: Jane
	FirstName string `json:"firstName" validate:"required"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"lastName" validate:"required"`

	// Email, unique across users
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required"`

	// Password, stored as given
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`

	// Optional date of birth
	// example: 1995-04-20
	DateOfBirth *string `json:"dateOfBirth"`
}

// CreateUserResponse is the redacted user projection; the password is never
// echoed back.
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewCreateUserHandler returns an HTTP handler for signup.
// @Summary Create a new user
// @Description Validates the payload, rejects duplicate emails, and returns the new user without the password.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "Signup request"
// @Success 200 {object} handlers.CreateUserResponse "User created"
// @Failure 400 {object} handlers.APIError "Invalid payload or duplicate email"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /users [post]
func NewCreateUserHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user data", validation.DecodeErrors(err)...)
			return
		}

		if fieldErrs := validation.Validate(req); len(fieldErrs) > 0 {
			writeError(w, http.StatusBadRequest, "Invalid user data", fieldErrs...)
			return
		}

		user, err := svc.Register(r.Context(), models.User{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Password:    req.Password,
			DateOfBirth: req.DateOfBirth,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusBadRequest, "User with this email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to create user")
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
