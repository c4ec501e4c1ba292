package services

import (
	"context"
	"time"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// PeriodEntryWriter defines write operations for period entries.
type PeriodEntryWriter interface {
	Save(ctx context.Context, entry models.PeriodEntry) (*models.PeriodEntry, error)
}

// PeriodEntryReader defines read operations for period entries.
type PeriodEntryReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.PeriodEntry, error)
}

// PeriodService persists daily period logs and answers per-user and
// per-month queries.
type PeriodService struct {
	writer PeriodEntryWriter
	reader PeriodEntryReader
}

// NewPeriodService creates a new PeriodService instance.
func NewPeriodService(reader PeriodEntryReader, writer PeriodEntryWriter) *PeriodService {
	return &PeriodService{
		writer: writer,
		reader: reader,
	}
}

// Create stores one daily log.
func (svc *PeriodService) Create(ctx context.Context, entry models.PeriodEntry) (*models.PeriodEntry, error) {
	created, err := svc.writer.Save(ctx, entry)
	if err != nil {
		logger.Log.Errorw("failed to save period entry", "err", err)
		return nil, err
	}

	return created, nil
}

// ListByUser returns all of a user's entries, possibly empty.
func (svc *PeriodService) ListByUser(ctx context.Context, userID int64) ([]models.PeriodEntry, error) {
	entries, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list period entries", "userID", userID, "err", err)
		return nil, err
	}

	return entries, nil
}

// ListByUserAndMonth returns the user's entries whose calendar date falls in
// the given year and month. The month is zero-based (January is 0), matching
// the client contract this API grew up with. Entries whose date fails to
// parse never match.
func (svc *PeriodService) ListByUserAndMonth(ctx context.Context, userID int64, year, month int) ([]models.PeriodEntry, error) {
	entries, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list period entries for month", "userID", userID, "err", err)
		return nil, err
	}

	filtered := []models.PeriodEntry{}
	for _, entry := range entries {
		date, err := parseEntryDate(entry.Date)
		if err != nil {
			continue
		}
		if date.Year() == year && int(date.Month())-1 == month {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}

// entryDateLayouts are the accepted shapes of the caller-supplied date
// string, tried in order.
var entryDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// parseEntryDate interprets the stored date string as a calendar date in the
// deployment's local time zone.
func parseEntryDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range entryDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
