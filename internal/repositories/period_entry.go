package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

type PeriodEntryReadRepository struct {
	db *sqlx.DB
}

func NewPeriodEntryReadRepository(db *sqlx.DB) *PeriodEntryReadRepository {
	return &PeriodEntryReadRepository{db: db}
}

// ListByUser returns a user's period entries in insertion order.
func (r *PeriodEntryReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.PeriodEntry, error) {
	const query = `
		SELECT id, user_id, date, flow, symptoms, notes, created_at
		FROM period_entries
		WHERE user_id = ?
		ORDER BY id
	`

	entries := []models.PeriodEntry{}
	err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}

type PeriodEntryWriteRepository struct {
	db *sqlx.DB
}

func NewPeriodEntryWriteRepository(db *sqlx.DB) *PeriodEntryWriteRepository {
	return &PeriodEntryWriteRepository{db: db}
}

// Save inserts one daily log. Entries are immutable after creation.
func (r *PeriodEntryWriteRepository) Save(ctx context.Context, entry models.PeriodEntry) (*models.PeriodEntry, error) {
	const query = `
		INSERT INTO period_entries (user_id, date, flow, symptoms, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	if entry.Symptoms == nil {
		entry.Symptoms = models.StringList{}
	}
	entry.CreatedAt = time.Now()

	args := []any{entry.UserID, entry.Date, entry.Flow, entry.Symptoms, entry.Notes, entry.CreatedAt}

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&entry.ID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &entry, nil
}
