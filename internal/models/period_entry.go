package models

import "time"

// PeriodEntry represents one daily period-tracker log.
// The date is the caller-supplied calendar date string; no timezone
// normalization is applied to it.
type PeriodEntry struct {
	ID        int64      `json:"id" db:"id"`                // Primary key
	UserID    *int64     `json:"userId" db:"user_id"`       // Owning user, nil for anonymous
	Date      string     `json:"date" db:"date"`            // Calendar date as supplied, e.g. "2024-01-15"
	Flow      *string    `json:"flow" db:"flow"`            // Optional flow intensity tag
	Symptoms  StringList `json:"symptoms" db:"symptoms"`    // Symptom tags for the day
	Notes     *string    `json:"notes" db:"notes"`          // Optional free text
	CreatedAt time.Time  `json:"createdAt" db:"created_at"` // Creation timestamp
}
