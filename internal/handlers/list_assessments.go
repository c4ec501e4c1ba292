package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// AssessmentLister defines the interface that the service must implement.
type AssessmentLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.SymptomAssessment, error)
}

// NewListAssessmentsHandler returns an HTTP handler for listing a user's
// assessments.
// @Summary List a user's symptom assessments
// @Description Returns the user's assessments in submission order; an unknown user yields an empty array, never a 404.
// @Tags symptom-assessments
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {array} models.SymptomAssessment "Assessments, possibly empty"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /symptom-assessments/user/{userId} [get]
func NewListAssessmentsHandler(svc AssessmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A non-numeric id degrades to user 0, which owns nothing.
		userID, _ := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)

		assessments, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get assessments")
			return
		}

		writeJSON(w, http.StatusOK, assessments)
	}
}
