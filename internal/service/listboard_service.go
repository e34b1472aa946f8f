package service

import (
	"context"

	"github.com/timegrid/backend/internal/model"
	"github.com/timegrid/backend/internal/repository"
)

// ListboardResult is one page of the timesheet listboard.
type ListboardResult struct {
	Entries []*model.MonthlyEntry `json:"entries"`
	Total   int                   `json:"total"`
	Page    int                   `json:"page"`
	PerPage int                   `json:"per_page"`
}

// ListboardService pages monthly entries for the dashboard list view.
// What a viewer sees depends on their role: employees see their own
// sheets, supervisors their review queue, HR the verification queue.
type ListboardService interface {
	// List pages sheets visible to the role. A non-empty status narrows
	// the role's queue to that single status.
	List(ctx context.Context, role, employeeID, status string, page, perPage int) (*ListboardResult, error)
}

type listboardService struct {
	monthlyRepo repository.MonthlyEntryRepository
}

// NewListboardService creates a ListboardService.
func NewListboardService(monthlyRepo repository.MonthlyEntryRepository) ListboardService {
	return &listboardService{monthlyRepo: monthlyRepo}
}

func (s *listboardService) List(ctx context.Context, role, employeeID, status string, page, perPage int) (*ListboardResult, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	filter := repository.MonthlyEntryFilter{EmployeeID: employeeID}
	switch role {
	case RoleHR:
		filter.Status = model.StatusApproved
	case RoleSupervisor:
		filter.Statuses = []string{model.StatusSubmitted, model.StatusApproved, model.StatusRejected}
	default:
		if employeeID == "" {
			return nil, ErrForbidden
		}
	}
	if status != "" {
		filter.Status = status
		filter.Statuses = nil
	}

	total, err := s.monthlyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	entries, err := s.monthlyRepo.List(ctx, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.MonthlyEntry{}
	}

	return &ListboardResult{Entries: entries, Total: total, Page: page, PerPage: perPage}, nil
}
