package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
	"github.com/femwell/femwell-backend/internal/validation"
)

// AssessmentCreator defines the interface that the service must implement.
type AssessmentCreator interface {
	Create(ctx context.Context, assessment models.SymptomAssessment) (*models.SymptomAssessment, error)
}

// CreateAssessmentRequest represents the JSON body for an assessment
// submission. The risk score and level are computed by the caller before
// submission and stored verbatim.
// swagger:model CreateAssessmentRequest
type CreateAssessmentRequest struct {
	// Owning user id, omit for anonymous assessments
	// example: 1
	UserID *int64 `json:"userId"`

	// Selected symptom tags, defaults to empty
	// example: ["acne","fatigue"]
	Symptoms []string `json:"symptoms"`

	// Questionnaire answers by question key. Accepted keys are the fixed
	// questionnaire fields: periodRegularity, moodIssues, fatigueLevel,
	// weightGain, weightDifficulty; unknown keys are stored as-is.
	Responses map[string]string `json:"responses"`

	// Precomputed risk score
	// required: true
	// example: 7
	RiskScore *int `json:"riskScore" validate:"required"`

	// Precomputed risk level
	// required: true
	// example: Moderate Risk
	RiskLevel string `json:"riskLevel" validate:"required"`
}

// NewCreateAssessmentHandler returns an HTTP handler for assessment
// submissions.
// @Summary Submit a symptom assessment
// @Description Persists a completed questionnaire with its precomputed risk score and level.
// @Tags symptom-assessments
// @Accept json
// @Produce json
// @Param createAssessmentRequest body handlers.CreateAssessmentRequest true "Assessment submission"
// @Success 200 {object} models.SymptomAssessment "Stored record"
// @Failure 400 {object} handlers.APIError "Invalid payload"
// @Failure 500 {object} handlers.APIError "Internal error"
// @Router /symptom-assessments [post]
func NewCreateAssessmentHandler(svc AssessmentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAssessmentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid assessment data", validation.DecodeErrors(err)...)
			return
		}

		if fieldErrs := validation.Validate(req); len(fieldErrs) > 0 {
			writeError(w, http.StatusBadRequest, "Invalid assessment data", fieldErrs...)
			return
		}

		assessment, err := svc.Create(r.Context(), models.SymptomAssessment{
			UserID:    req.UserID,
			Symptoms:  models.StringList(req.Symptoms),
			Responses: models.StringMap(req.Responses),
			RiskScore: *req.RiskScore,
			RiskLevel: req.RiskLevel,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create assessment")
			return
		}

		writeJSON(w, http.StatusOK, assessment)
	}
}
