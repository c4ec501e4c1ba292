package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/femwell/femwell-backend/internal/models"
)

func TestAssessmentRepositories_SaveAndListByUser(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	writer := NewAssessmentWriteRepository(db)
	reader := NewAssessmentReadRepository(db)

	first, err := writer.Save(ctx, models.SymptomAssessment{
		UserID:    int64Ptr(1),
		Symptoms:  models.StringList{"acne", "fatigue"},
		Responses: models.StringMap{"periodRegularity": "irregular", "moodIssues": "yes"},
		RiskScore: 7,
		RiskLevel: "Moderate Risk",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := writer.Save(ctx, models.SymptomAssessment{
		UserID:    int64Ptr(1),
		Symptoms:  models.StringList{"hair loss"},
		Responses: models.StringMap{"periodRegularity": "regular"},
		RiskScore: 1,
		RiskLevel: "Low Risk",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// A different user's record must not leak into the listing.
	_, err = writer.Save(ctx, models.SymptomAssessment{
		UserID:    int64Ptr(2),
		RiskScore: 0,
		RiskLevel: "Low Risk",
	})
	require.NoError(t, err)

	assessments, err := reader.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, assessments, 2)

	assert.Equal(t, int64(1), assessments[0].ID)
	assert.Equal(t, models.StringList{"acne", "fatigue"}, assessments[0].Symptoms)
	assert.Equal(t, models.StringMap{"periodRegularity": "irregular", "moodIssues": "yes"}, assessments[0].Responses)
	assert.Equal(t, 7, assessments[0].RiskScore)
	assert.Equal(t, "Moderate Risk", assessments[0].RiskLevel)
	assert.Equal(t, int64(2), assessments[1].ID)
}

func TestAssessmentWriteRepository_Save_DefaultsCollections(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	writer := NewAssessmentWriteRepository(db)
	reader := NewAssessmentReadRepository(db)

	created, err := writer.Save(ctx, models.SymptomAssessment{
		UserID:    int64Ptr(1),
		RiskScore: 0,
		RiskLevel: "Low Risk",
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Symptoms)
	assert.NotNil(t, created.Responses)

	assessments, err := reader.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, models.StringList{}, assessments[0].Symptoms)
	assert.Equal(t, models.StringMap{}, assessments[0].Responses)
}

func TestAssessmentReadRepository_ListByUser_Empty(t *testing.T) {
	db := setupSQLite(t)

	reader := NewAssessmentReadRepository(db)

	assessments, err := reader.ListByUser(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, assessments)
	assert.Empty(t, assessments)
}
