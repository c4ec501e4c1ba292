package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// PeriodEntryMonthLister defines the interface that the service must
// implement.
type PeriodEntryMonthLister interface {
	ListByUserAndMonth(ctx context.Context, userID int64, year, month int) ([]models.PeriodEntry, error)
}

// NewListPeriodEntriesByMonthHandler returns an HTTP handler for the
// per-month period entry listing.
// @Summary List a user's period entries for one calendar month
// @Description The month path parameter is zero-based: January is 0.
// @Tags period-entries
// @Produce json
// @Param userId path int true "User id"
// @Param year path int true "Calendar year"
// @Param month path int true "Zero-based month"
// @Success 200 {array} models.PeriodEntry "Matching entries, possibly empty"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /period-entries/user/{userId}/{year}/{month} [get]
func NewListPeriodEntriesByMonthHandler(svc PeriodEntryMonthLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
		year, _ := strconv.Atoi(chi.URLParam(r, "year"))
		month, _ := strconv.Atoi(chi.URLParam(r, "month"))

		entries, err := svc.ListByUserAndMonth(r.Context(), userID, year, month)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get period entries for month")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
