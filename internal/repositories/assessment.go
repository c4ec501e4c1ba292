package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

type AssessmentReadRepository struct {
	db *sqlx.DB
}

func NewAssessmentReadRepository(db *sqlx.DB) *AssessmentReadRepository {
	return &AssessmentReadRepository{db: db}
}

// ListByUser returns a user's assessments in insertion order. A user with no
// assessments yields an empty slice, never an error.
func (r *AssessmentReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.SymptomAssessment, error) {
	const query = `
		SELECT id, user_id, symptoms, responses, risk_score, risk_level, created_at
		FROM symptom_assessments
		WHERE user_id = ?
		ORDER BY id
	`

	assessments := []models.SymptomAssessment{}
	err := r.db.SelectContext(ctx, &assessments, r.db.Rebind(query), userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return assessments, nil
}

type AssessmentWriteRepository struct {
	db *sqlx.DB
}

func NewAssessmentWriteRepository(db *sqlx.DB) *AssessmentWriteRepository {
	return &AssessmentWriteRepository{db: db}
}

// Save inserts a completed questionnaire. Records are immutable after this
// point; there is no update path.
func (r *AssessmentWriteRepository) Save(ctx context.Context, assessment models.SymptomAssessment) (*models.SymptomAssessment, error) {
	const query = `
		INSERT INTO symptom_assessments (user_id, symptoms, responses, risk_score, risk_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	if assessment.Symptoms == nil {
		assessment.Symptoms = models.StringList{}
	}
	if assessment.Responses == nil {
		assessment.Responses = models.StringMap{}
	}
	assessment.CreatedAt = time.Now()

	args := []any{assessment.UserID, assessment.Symptoms, assessment.Responses,
		assessment.RiskScore, assessment.RiskLevel, assessment.CreatedAt}

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&assessment.ID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &assessment, nil
}
