package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
	"github.com/femwell/femwell-backend/internal/validation"
)

// PeriodEntryCreator defines the interface that the service must implement.
type PeriodEntryCreator interface {
	Create(ctx context.Context, entry models.PeriodEntry) (*models.PeriodEntry, error)
}

// CreatePeriodEntryRequest represents the JSON body for one daily log
// swagger:model CreatePeriodEntryRequest
type CreatePeriodEntryRequest struct {
	// Owning user id, omit for anonymous entries
	// example: 1
	UserID *int64 `json:"userId"`

	// Calendar date of the entry
	// required: true
	// example: 2024-01-15
	Date string `json:"date" validate:"required"`

	// Optional flow intensity tag
	// example: medium
	Flow *string `json:"flow"`

	// Symptom tags for the day, defaults to empty
	// example: ["cramps"]
	Symptoms []string `json:"symptoms"`

	// Optional free-text notes
	Notes *string `json:"notes"`
}

// NewCreatePeriodEntryHandler returns an HTTP handler for period logging.
// @Summary Log a period entry
// @Description Persists one daily period log for a user or anonymously.
// @Tags period-entries
// @Accept json
// @Produce json
// @Param createPeriodEntryRequest body handlers.CreatePeriodEntryRequest true "Daily log"
// @Success 200 {object} models.PeriodEntry "Stored record"
// @Failure 400 {object} handlers.APIError "Invalid payload"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /period-entries [post]
func NewCreatePeriodEntryHandler(svc PeriodEntryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePeriodEntryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid entry data", validation.DecodeErrors(err)...)
			return
		}

		if fieldErrs := validation.Validate(req); len(fieldErrs) > 0 {
			writeError(w, http.StatusBadRequest, "Invalid entry data", fieldErrs...)
			return
		}

		entry, err := svc.Create(r.Context(), models.PeriodEntry{
			UserID:   req.UserID,
			Date:     req.Date,
			Flow:     req.Flow,
			Symptoms: models.StringList(req.Symptoms),
			Notes:    req.Notes,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create period entry")
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}
