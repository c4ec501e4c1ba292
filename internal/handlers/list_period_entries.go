package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// PeriodEntryLister defines the interface that the service must implement.
type PeriodEntryLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.PeriodEntry, error)
}

// NewListPeriodEntriesHandler returns an HTTP handler for listing a user's
// period entries.
// @Summary List a user's period entries
// @Description Returns the user's entries in logging order; an unknown user yields an empty array.
// @Tags period-entries
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {array} models.PeriodEntry "Entries, possibly empty"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /period-entries/user/{userId} [get]
func NewListPeriodEntriesHandler(svc PeriodEntryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)

		entries, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get period entries")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
