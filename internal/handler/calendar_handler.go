package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/timegrid/backend/internal/formset"
	"github.com/timegrid/backend/internal/grid"
	"github.com/timegrid/backend/internal/model"
	"github.com/timegrid/backend/internal/repository"
	"github.com/timegrid/backend/internal/service"
)

// CalendarConfig tunes the calendar endpoints.
type CalendarConfig struct {
	// AllowFutureMonths lets employees open and submit months after the
	// current one. Off by default; future months redirect to today.
	AllowFutureMonths bool
}

// CalendarHandler serves the month-view timesheet page and its actions.
type CalendarHandler struct {
	ts        service.TimesheetService
	cal       service.CalendarService
	employees repository.EmployeeRepository
	cfg       CalendarConfig
	now       func() time.Time
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(ts service.TimesheetService, cal service.CalendarService, employees repository.EmployeeRepository, cfg CalendarConfig) *CalendarHandler {
	return &CalendarHandler{ts: ts, cal: cal, employees: employees, cfg: cfg, now: time.Now}
}

func calendarPath(employeeID string, year int, month time.Month) string {
	return fmt.Sprintf("/api/timesheets/%s/%d/%d", employeeID, year, int(month))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func (h *CalendarHandler) pathParams(r *http.Request) (string, int, time.Month, error) {
	employeeID := r.PathValue("employee_id")
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad year: %w", err)
	}
	monthNum, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return "", 0, 0, fmt.Errorf("bad month %q", r.PathValue("month"))
	}
	return employeeID, year, time.Month(monthNum), nil
}

// Get handles GET /api/timesheets/{employee_id}/{year}/{month}.
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, err := h.pathParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_month")
		return
	}

	// Month-picker submissions arrive as ?ym=YYYY-MM; normalize to the
	// canonical /<year>/<month>/ path.
	if ym := r.URL.Query().Get("ym"); ym != "" {
		dt, err := time.Parse("2006-01", ym)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_month_format")
			return
		}
		if dt.Year() != year || dt.Month() != month {
			http.Redirect(w, r, calendarPath(employeeID, dt.Year(), dt.Month()), http.StatusSeeOther)
			return
		}
	}

	today := h.now()
	if h.cal.IsFutureMonth(year, month, today) && !h.cfg.AllowFutureMonths {
		http.Redirect(w, r, calendarPath(employeeID, today.Year(), today.Month()), http.StatusSeeOther)
		return
	}

	employee, err := h.employees.GetByIdentifier(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee_not_found")
			return
		}
		slog.Error("employee lookup failed", "error", err, "employee_id", employeeID)
		writeError(w, http.StatusInternalServerError, "lookup_failed")
		return
	}

	monthDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var monthly *model.MonthlyEntry
	var entries []*model.DailyEntry
	monthly, err = h.ts.GetMonthly(r.Context(), employee.ID, monthDate)
	switch {
	case err == nil:
		if _, err := h.ts.EnsureDailyPlaceholders(r.Context(), monthly); err != nil {
			slog.Error("placeholder creation failed", "error", err, "monthly_entry_id", monthly.ID)
			writeError(w, http.StatusInternalServerError, "placeholders_failed")
			return
		}
		entries, err = h.ts.Entries(r.Context(), monthly.ID)
		if err != nil {
			slog.Error("entries load failed", "error", err, "monthly_entry_id", monthly.ID)
			writeError(w, http.StatusInternalServerError, "entries_failed")
			return
		}
	case errors.Is(err, repository.ErrNotFound):
		monthly = nil
	default:
		slog.Error("monthly entry load failed", "error", err, "employee_id", employeeID)
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	view, err := h.cal.BuildGrid(year, month, entries)
	if err != nil {
		slog.Error("grid build failed", "error", err, "year", year, "month", int(month))
		writeError(w, http.StatusInternalServerError, "grid_failed")
		return
	}

	holidays, err := h.cal.Holidays(r.Context(), year, month, employee.IsNightwatch())
	if err != nil {
		slog.Error("holiday lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "holidays_failed")
		return
	}

	prevYear, prevMonth := h.cal.AddMonths(year, month, -1)
	nextYear, nextMonth := h.cal.AddMonths(year, month, +1)

	writeJSON(w, http.StatusOK, map[string]any{
		"year":            year,
		"month":           int(month),
		"month_name":      month.String(),
		"employee":        employee,
		"monthly_entry":   monthly,
		"grid":            view,
		"holidays":        holidays,
		"entry_types":     model.EntryTypeChoices(),
		"weekday_headers": []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		"prev_url":        calendarPath(employeeID, prevYear, prevMonth),
		"next_url":        calendarPath(employeeID, nextYear, nextMonth),
		"can_create_for_month": h.cfg.AllowFutureMonths ||
			!h.cal.IsFutureMonth(year, month, h.now()),
	})
}

// Post handles POST /api/timesheets/{employee_id}/{year}/{month}. The
// action is carried in the form body, the way the page submits it:
// "start" opens a draft, "controller" navigates months, "review_action"
// runs the workflow, "auto_fill" previews a filled grid, anything else
// saves the posted formset (strictly, when "submit" is present).
func (h *CalendarHandler) Post(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, err := h.pathParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_month")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_form")
		return
	}

	// Month navigation discards everything else in the post.
	if ctrl := r.PostForm.Get("controller"); ctrl == "next" || ctrl == "prev" {
		delta := 1
		if ctrl == "prev" {
			delta = -1
		}
		y, m := h.cal.AddMonths(year, month, delta)
		http.Redirect(w, r, calendarPath(employeeID, y, m), http.StatusSeeOther)
		return
	}

	employee, err := h.employees.GetByIdentifier(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee_not_found")
			return
		}
		slog.Error("employee lookup failed", "error", err, "employee_id", employeeID)
		writeError(w, http.StatusInternalServerError, "lookup_failed")
		return
	}
	monthDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	if r.PostForm.Has("start") {
		if h.cal.IsFutureMonth(year, month, h.now()) && !h.cfg.AllowFutureMonths {
			writeError(w, http.StatusForbidden, "future_month")
			return
		}
		m, created, err := h.ts.GetOrCreateMonthly(r.Context(), employee.ID, monthDate)
		if err != nil {
			slog.Error("timesheet create failed", "error", err, "employee_id", employeeID)
			writeError(w, http.StatusInternalServerError, "create_failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "created": created, "monthly_entry": m})
		return
	}

	monthly, err := h.ts.GetMonthly(r.Context(), employee.ID, monthDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Save/submit/review only appear once a sheet exists.
			writeError(w, http.StatusConflict, "no_timesheet")
			return
		}
		slog.Error("monthly entry load failed", "error", err, "employee_id", employeeID)
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	if action := r.PostForm.Get("review_action"); action != "" {
		h.review(w, r, monthly, action)
		return
	}

	if r.PostForm.Has("auto_fill") {
		entries, err := h.ts.Entries(r.Context(), monthly.ID)
		if err != nil {
			slog.Error("entries load failed", "error", err, "monthly_entry_id", monthly.ID)
			writeError(w, http.StatusInternalServerError, "entries_failed")
			return
		}
		view, err := h.cal.AutoFilledGrid(year, month, entries)
		if err != nil {
			slog.Error("auto-fill failed", "error", err)
			writeError(w, http.StatusInternalServerError, "auto_fill_failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "grid": view})
		return
	}

	h.save(w, r, monthly, employee)
}

func (h *CalendarHandler) review(w http.ResponseWriter, r *http.Request, monthly *model.MonthlyEntry, action string) {
	actor := service.Actor{
		Role:      roleFromRequest(r),
		FirstName: r.PostForm.Get("reviewer_first_name"),
		LastName:  r.PostForm.Get("reviewer_last_name"),
	}
	comment := r.PostForm.Get("review_comment")

	updated, err := h.ts.Review(r.Context(), monthly.ID, action, actor, comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "forbidden")
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "invalid_transition")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("review failed", "error", err, "monthly_entry_id", monthly.ID, "action", action)
			writeError(w, http.StatusInternalServerError, "review_failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "monthly_entry": updated})
}

func (h *CalendarHandler) save(w http.ResponseWriter, r *http.Request, monthly *model.MonthlyEntry, employee *model.Employee) {
	entries, err := formset.Decode(r.PostForm, grid.DefaultPrefix)
	if err != nil {
		if errors.Is(err, formset.ErrNotSubmitted) {
			// The page was posted without its formset; nothing to save.
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "saved": false, "message": "no changes submitted"})
			return
		}
		slog.Warn("formset decode failed", "error", err, "monthly_entry_id", monthly.ID)
		writeError(w, http.StatusBadRequest, "invalid_formset")
		return
	}

	strict := r.PostForm.Has("submit")
	if err := h.ts.SaveEntries(r.Context(), monthly, entries, strict, employee.IsNightwatch()); err != nil {
		if errors.Is(err, service.ErrReadOnly) {
			writeError(w, http.StatusConflict, "read_only")
			return
		}
		slog.Error("save failed", "error", err, "monthly_entry_id", monthly.ID)
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":            true,
		"saved":         true,
		"submitted":     strict,
		"monthly_entry": monthly,
	})
}

// roleFromRequest reads the actor role the frontend forwards. Anything
// unrecognized falls back to the employee role.
func roleFromRequest(r *http.Request) string {
	switch role := r.Header.Get("X-Role"); role {
	case service.RoleSupervisor, service.RoleHR:
		return role
	default:
		return service.RoleEmployee
	}
}
