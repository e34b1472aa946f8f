package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/timegrid/backend/internal/formset"
	"github.com/timegrid/backend/internal/model"
	"github.com/timegrid/backend/internal/repository"
)

// ErrForbidden is returned when an actor's role does not allow an action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when a review action does not apply to
// the sheet's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrReadOnly is returned when an employee edits a sheet that reached
// approval or verification.
var ErrReadOnly = errors.New("timesheet is read-only")

// Actor roles. Where the role comes from is the transport's concern; the
// transition rules live here.
const (
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
	RoleHR         = "hr"
)

// Review actions.
const (
	ActionApprove = "approve"
	ActionVerify  = "verify"
	ActionReject  = "reject"
	ActionRetract = "retract"
)

// Actor identifies who is performing a review action.
type Actor struct {
	Role      string
	FirstName string
	LastName  string
}

// Credentials renders the reviewer stamp stored on the sheet, "F. Last".
func (a Actor) Credentials() string {
	if a.FirstName == "" || a.LastName == "" {
		return ""
	}
	initial, _ := utf8.DecodeRuneInString(a.FirstName)
	return fmt.Sprintf("%c. %s", initial, a.LastName)
}

// TimesheetService provides the monthly timesheet lifecycle: creation,
// placeholder days, saving submitted entries and the review workflow.
type TimesheetService interface {
	// GetMonthly returns the sheet for an employee and month, or
	// repository.ErrNotFound.
	GetMonthly(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error)
	// GetOrCreateMonthly returns the sheet, creating a draft (with a full
	// set of placeholder days) when none exists. The bool reports creation.
	GetOrCreateMonthly(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, bool, error)
	// EnsureDailyPlaceholders creates any missing zero-duration day rows.
	// Idempotent; returns how many were created.
	EnsureDailyPlaceholders(ctx context.Context, m *model.MonthlyEntry) (int, error)
	// Entries returns the sheet's daily entries ordered by date.
	Entries(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error)
	// SaveEntries persists decoded formset entries onto the sheet and
	// recomputes its totals. With strict set the sheet is also submitted
	// for review.
	SaveEntries(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error
	// Review applies a workflow action (approve/verify/reject/retract) on
	// behalf of actor and returns the updated sheet.
	Review(ctx context.Context, id string, action string, actor Actor, comment string) (*model.MonthlyEntry, error)
}

type timesheetService struct {
	monthlyRepo repository.MonthlyEntryRepository
	dailyRepo   repository.DailyEntryRepository
	cal         CalendarService
	now         func() time.Time
}

// NewTimesheetService creates a TimesheetService.
func NewTimesheetService(monthlyRepo repository.MonthlyEntryRepository, dailyRepo repository.DailyEntryRepository, cal CalendarService) TimesheetService {
	return &timesheetService{
		monthlyRepo: monthlyRepo,
		dailyRepo:   dailyRepo,
		cal:         cal,
		now:         time.Now,
	}
}

func (s *timesheetService) GetMonthly(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
	return s.monthlyRepo.GetByEmployeeAndMonth(ctx, employeeID, firstOfMonth(month))
}

func (s *timesheetService) GetOrCreateMonthly(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, bool, error) {
	month = firstOfMonth(month)

	m, err := s.monthlyRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err == nil {
		if _, err := s.EnsureDailyPlaceholders(ctx, m); err != nil {
			return nil, false, err
		}
		return m, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	m = &model.MonthlyEntry{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Month:      month,
		Status:     model.StatusDraft,
	}
	if err := s.monthlyRepo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent create; use the winner.
			m, err = s.monthlyRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
			if err != nil {
				return nil, false, err
			}
			return m, false, nil
		}
		return nil, false, err
	}
	if _, err := s.EnsureDailyPlaceholders(ctx, m); err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (s *timesheetService) EnsureDailyPlaceholders(ctx context.Context, m *model.MonthlyEntry) (int, error) {
	days := s.cal.MonthDays(m.Month.Year(), m.Month.Month())
	return s.dailyRepo.CreateMissing(ctx, m.ID, days)
}

func (s *timesheetService) Entries(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error) {
	return s.dailyRepo.ListByMonthlyEntry(ctx, monthlyEntryID)
}

func (s *timesheetService) SaveEntries(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error {
	if m.Status == model.StatusApproved || m.Status == model.StatusVerified {
		return ErrReadOnly
	}

	year, month := m.Month.Year(), m.Month.Month()
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	for _, e := range entries {
		if e.Day < 1 || e.Day > lastDay {
			return fmt.Errorf("day %d outside %s", e.Day, m.Month.Format("2006-01"))
		}
		day := time.Date(year, month, e.Day, 0, 0, 0, 0, time.UTC)
		if err := s.dailyRepo.UpsertDay(ctx, m.ID, day, e.EntryType, e.Duration, e.Row); err != nil {
			return fmt.Errorf("save day %d: %w", e.Day, err)
		}
	}

	stored, err := s.dailyRepo.ListByMonthlyEntry(ctx, m.ID)
	if err != nil {
		return err
	}
	overtime := ComputeMonthlyOvertime(stored, nightwatch)
	leave := ComputeLeaveTaken(stored)
	if err := s.monthlyRepo.UpdateTotals(ctx, m.ID, overtime, leave); err != nil {
		return err
	}
	m.MonthlyOvertime = overtime
	m.AnnualLeaveTaken = leave

	if strict {
		now := s.now()
		patch := model.ReviewPatch{
			Status:            model.StatusSubmitted,
			SubmittedDatetime: &now,
		}
		if err := s.monthlyRepo.ApplyReview(ctx, m.ID, patch); err != nil {
			return err
		}
		m.Status = model.StatusSubmitted
		m.SubmittedDatetime = &now
	}
	return nil
}

func (s *timesheetService) Review(ctx context.Context, id string, action string, actor Actor, comment string) (*model.MonthlyEntry, error) {
	m, err := s.monthlyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Once verified, only HR may touch the sheet (to retract).
	if m.IsFinal() && actor.Role != RoleHR {
		return nil, ErrForbidden
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	creds := actor.Credentials()
	patch := model.ReviewPatch{Comment: &comment}

	switch action {
	case ActionApprove:
		if actor.Role != RoleSupervisor {
			return nil, ErrForbidden
		}
		if m.Status != model.StatusSubmitted {
			return nil, fmt.Errorf("%w: only submitted timesheets can be approved", ErrInvalidTransition)
		}
		patch.Status = model.StatusApproved
		patch.ApprovedBy = &creds
		patch.ApprovedDate = &today
	case ActionVerify:
		if actor.Role != RoleHR {
			return nil, ErrForbidden
		}
		if m.Status != model.StatusApproved {
			return nil, fmt.Errorf("%w: only approved timesheets can be verified", ErrInvalidTransition)
		}
		patch.Status = model.StatusVerified
		patch.VerifiedBy = &creds
		patch.VerifiedDate = &today
	case ActionReject:
		if actor.Role != RoleSupervisor && actor.Role != RoleHR {
			return nil, ErrForbidden
		}
		if m.Status != model.StatusSubmitted && m.Status != model.StatusApproved {
			return nil, fmt.Errorf("%w: only submitted or approved timesheets can be rejected", ErrInvalidTransition)
		}
		patch.Status = model.StatusRejected
		patch.RejectedBy = &creds
		patch.RejectedDate = &today
	case ActionRetract:
		if actor.Role != RoleHR {
			return nil, ErrForbidden
		}
		if m.Status != model.StatusVerified {
			return nil, fmt.Errorf("%w: only verified timesheets can be retracted", ErrInvalidTransition)
		}
		patch.Status = model.StatusApproved
		patch.ClearVerification = true
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}

	if err := s.monthlyRepo.ApplyReview(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.monthlyRepo.GetByID(ctx, id)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
