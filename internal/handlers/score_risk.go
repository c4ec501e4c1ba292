package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/femwell/femwell-backend/internal/scoring"
	"github.com/femwell/femwell-backend/internal/validation"
)

// ScoreRiskRequest represents one questionnaire response set to evaluate.
// swagger:model ScoreRiskRequest
type ScoreRiskRequest struct {
	// Selected symptom tags; each contributes one point
	// example: ["acne","fatigue"]
	Symptoms []string `json:"symptoms"`

	// Period regularity answer
	// example: irregular
	PeriodRegularity string `json:"periodRegularity"`

	// Mood issues answer
	// example: yes
	MoodIssues string `json:"moodIssues"`

	// Fatigue level answer
	// example: often
	FatigueLevel string `json:"fatigueLevel"`

	// Weight gain answer
	// example: yes
	WeightGain string `json:"weightGain"`

	// Weight-loss difficulty answer
	// example: no
	WeightDifficulty string `json:"weightDifficulty"`

	// Family history tags
	// example: ["pcos"]
	FamilyHistory []string `json:"familyHistory"`
}

// ScoreRiskResponse couples the computed score with its classification.
// swagger:model ScoreRiskResponse
type ScoreRiskResponse struct {
	// Integer point tally
	// example: 7
	RiskScore int `json:"riskScore"`

	// One of "High Risk", "Moderate Risk", "Low Risk"
	// example: Moderate Risk
	RiskLevel string `json:"riskLevel"`
}

// NewScoreRiskHandler returns an HTTP handler that evaluates a questionnaire
// without persisting anything.
// @Summary Compute a risk score
// @Description Stateless evaluation of the fixed point rule; nothing is stored.
// @Tags risk-scores
// @Accept json
// @Produce json
// @Param scoreRiskRequest body handlers.ScoreRiskRequest true "Questionnaire answers"
// @Success 200 {object} handlers.ScoreRiskResponse "Score and level"
// @Failure 400 {object} handlers.APIError "Invalid payload"
// @Router /risk-scores [post]
func NewScoreRiskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScoreRiskRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid questionnaire data", validation.DecodeErrors(err)...)
			return
		}

		result := scoring.Evaluate(scoring.Input{
			Symptoms:         req.Symptoms,
			PeriodRegularity: req.PeriodRegularity,
			MoodIssues:       req.MoodIssues,
			FatigueLevel:     req.FatigueLevel,
			WeightGain:       req.WeightGain,
			WeightDifficulty: req.WeightDifficulty,
			FamilyHistory:    req.FamilyHistory,
		})

		writeJSON(w, http.StatusOK, ScoreRiskResponse{
			RiskScore: result.Score,
			RiskLevel: result.Level,
		})
	}
}
