package repository

import (
	"context"
	"time"

	"github.com/timegrid/backend/internal/model"
)

// MonthlyEntryFilter narrows listboard queries.
type MonthlyEntryFilter struct {
	EmployeeID string
	Status     string
	// Statuses, when set, wins over Status and matches any of the given values.
	Statuses []string
}

// MonthlyEntryRepository handles persistence for monthly timesheets.
type MonthlyEntryRepository interface {
	// GetByEmployeeAndMonth returns the sheet for one employee and month.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error)
	// GetByID returns a single sheet by ID.
	GetByID(ctx context.Context, id string) (*model.MonthlyEntry, error)
	// Create inserts a new sheet. Returns ErrDuplicate if one already
	// exists for the employee and month.
	Create(ctx context.Context, m *model.MonthlyEntry) error
	// ApplyReview applies a review transition's stamps and status.
	ApplyReview(ctx context.Context, id string, patch model.ReviewPatch) error
	// UpdateTotals stores the recomputed overtime and leave totals.
	UpdateTotals(ctx context.Context, id string, overtime, leaveTaken float64) error
	// List returns sheets newest-month first for the listboard.
	List(ctx context.Context, filter MonthlyEntryFilter, limit, offset int) ([]*model.MonthlyEntry, error)
	// Count returns the number of sheets matching the filter.
	Count(ctx context.Context, filter MonthlyEntryFilter) (int, error)
}
