package repository

import (
	"context"
	"time"

	"github.com/timegrid/backend/internal/model"
)

// DailyEntryRepository handles persistence for per-day records.
type DailyEntryRepository interface {
	// ListByMonthlyEntry returns the days of a sheet ordered by date.
	ListByMonthlyEntry(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error)
	// CreateMissing inserts a zero-duration placeholder for every date not
	// already present, so the formset always has a full month to bind to.
	// Returns the number of rows created; idempotent.
	CreateMissing(ctx context.Context, monthlyEntryID string, days []time.Time) (int, error)
	// UpsertDay writes one day's entry type, duration and row position.
	UpsertDay(ctx context.Context, monthlyEntryID string, day time.Time, entryType string, duration float64, row int) error
}
