package services

import (
	"context"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// AssessmentWriter defines write operations for symptom assessments.
type AssessmentWriter interface {
	Save(ctx context.Context, assessment models.SymptomAssessment) (*models.SymptomAssessment, error)
}

// AssessmentReader defines read operations for symptom assessments.
type AssessmentReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.SymptomAssessment, error)
}

// AssessmentService persists completed questionnaires and lists them per
// user. Risk score and level arrive precomputed with the submission; the
// service stores them verbatim and never recomputes them.
type AssessmentService struct {
	writer AssessmentWriter
	reader AssessmentReader
}

// NewAssessmentService creates a new AssessmentService instance.
func NewAssessmentService(reader AssessmentReader, writer AssessmentWriter) *AssessmentService {
	return &AssessmentService{
		writer: writer,
		reader: reader,
	}
}

// Create stores one assessment submission.
func (svc *AssessmentService) Create(ctx context.Context, assessment models.SymptomAssessment) (*models.SymptomAssessment, error) {
	created, err := svc.writer.Save(ctx, assessment)
	if err != nil {
		logger.Log.Errorw("failed to save assessment", "err", err)
		return nil, err
	}

	return created, nil
}

// ListByUser returns all assessments belonging to a user, possibly empty.
func (svc *AssessmentService) ListByUser(ctx context.Context, userID int64) ([]models.SymptomAssessment, error) {
	assessments, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list assessments", "userID", userID, "err", err)
		return nil, err
	}

	return assessments, nil
}
