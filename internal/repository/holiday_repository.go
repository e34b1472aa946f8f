package repository

import (
	"context"

	"github.com/timegrid/backend/internal/model"
)

// HolidayRepository handles lookups of facility holidays.
type HolidayRepository interface {
	// ListByMonth returns the holidays falling in the given year and month.
	ListByMonth(ctx context.Context, year, month int) ([]*model.Holiday, error)
}
