package models

import "time"

// SymptomAssessment represents one completed questionnaire.
// The record is immutable after creation; riskScore and riskLevel are stored
// exactly as submitted and are always consistent with each other because they
// are computed together before submission.
type SymptomAssessment struct {
	ID        int64      `json:"id" db:"id"`                // Primary key
	UserID    *int64     `json:"userId" db:"user_id"`       // Owning user, nil for anonymous
	Symptoms  StringList `json:"symptoms" db:"symptoms"`    // Selected symptom tags, raw order kept
	Responses StringMap  `json:"responses" db:"responses"`  // Questionnaire answers by question key
	RiskScore int        `json:"riskScore" db:"risk_score"` // Integer point tally
	RiskLevel string     `json:"riskLevel" db:"risk_level"` // "High Risk" / "Moderate Risk" / "Low Risk"
	CreatedAt time.Time  `json:"createdAt" db:"created_at"` // Creation timestamp
}
