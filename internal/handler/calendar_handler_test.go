package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/timegrid/backend/internal/formset"
	"github.com/timegrid/backend/internal/model"
	"github.com/timegrid/backend/internal/repository"
	"github.com/timegrid/backend/internal/service"
)

// ---------------------------------------------------------------
// mocks
// ---------------------------------------------------------------

type mockEmployeeRepo struct {
	getByIdentifierFunc func(ctx context.Context, identifier string) (*model.Employee, error)
}

func (m *mockEmployeeRepo) GetByIdentifier(ctx context.Context, identifier string) (*model.Employee, error) {
	if m.getByIdentifierFunc != nil {
		return m.getByIdentifierFunc(ctx, identifier)
	}
	return &model.Employee{ID: "emp-1", Identifier: identifier, FirstName: "Ada", LastName: "Lovelace"}, nil
}

func (m *mockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return nil, repository.ErrNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context, department string, limit, offset int) ([]*model.Employee, error) {
	return nil, nil
}

type mockTimesheetService struct {
	getMonthlyFunc         func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error)
	getOrCreateMonthlyFunc func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, bool, error)
	ensurePlaceholdersFunc func(ctx context.Context, m *model.MonthlyEntry) (int, error)
	entriesFunc            func(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error)
	saveEntriesFunc        func(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error
	reviewFunc             func(ctx context.Context, id string, action string, actor service.Actor, comment string) (*model.MonthlyEntry, error)
}

func (m *mockTimesheetService) GetMonthly(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
	if m.getMonthlyFunc != nil {
		return m.getMonthlyFunc(ctx, employeeID, month)
	}
	return nil, repository.ErrNotFound
}

func (m *mockTimesheetService) GetOrCreateMonthly(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, bool, error) {
	if m.getOrCreateMonthlyFunc != nil {
		return m.getOrCreateMonthlyFunc(ctx, employeeID, month)
	}
	return &model.MonthlyEntry{ID: "m-1", EmployeeID: employeeID, Month: month, Status: model.StatusDraft}, true, nil
}

func (m *mockTimesheetService) EnsureDailyPlaceholders(ctx context.Context, me *model.MonthlyEntry) (int, error) {
	if m.ensurePlaceholdersFunc != nil {
		return m.ensurePlaceholdersFunc(ctx, me)
	}
	return 0, nil
}

func (m *mockTimesheetService) Entries(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error) {
	if m.entriesFunc != nil {
		return m.entriesFunc(ctx, monthlyEntryID)
	}
	return nil, nil
}

func (m *mockTimesheetService) SaveEntries(ctx context.Context, me *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error {
	if m.saveEntriesFunc != nil {
		return m.saveEntriesFunc(ctx, me, entries, strict, nightwatch)
	}
	return nil
}

func (m *mockTimesheetService) Review(ctx context.Context, id string, action string, actor service.Actor, comment string) (*model.MonthlyEntry, error) {
	if m.reviewFunc != nil {
		return m.reviewFunc(ctx, id, action, actor, comment)
	}
	return &model.MonthlyEntry{ID: id}, nil
}

// ---------------------------------------------------------------
// helpers
// ---------------------------------------------------------------

// The calendar arithmetic is pure, so the tests run it for real.
func newCalendarHandler(ts *mockTimesheetService, employees *mockEmployeeRepo, cfg CalendarConfig) *CalendarHandler {
	h := NewCalendarHandler(ts, service.NewCalendarService(nil), employees, cfg)
	h.now = func() time.Time { return time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC) }
	return h
}

func calendarGet(h *CalendarHandler, path, employeeID, year, month string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	req.SetPathValue("employee_id", employeeID)
	req.SetPathValue("year", year)
	req.SetPathValue("month", month)
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	return rec
}

func calendarPost(h *CalendarHandler, employeeID, year, month string, form url.Values, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/timesheets/"+employeeID+"/"+year+"/"+month, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if role != "" {
		req.Header.Set("X-Role", role)
	}
	req.SetPathValue("employee_id", employeeID)
	req.SetPathValue("year", year)
	req.SetPathValue("month", month)
	rec := httptest.NewRecorder()
	h.Post(rec, req)
	return rec
}

// ---------------------------------------------------------------
// GET
// ---------------------------------------------------------------

func TestCalendarGet_RendersGrid(t *testing.T) {
	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return &model.MonthlyEntry{ID: "m-1", EmployeeID: employeeID, Month: month, Status: model.StatusDraft}, nil
		},
		entriesFunc: func(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error) {
			return []*model.DailyEntry{
				{MonthlyEntryID: monthlyEntryID, Day: june.AddDate(0, 0, 2), EntryType: model.EntryTypeRegularHours, Duration: 7.5},
			}, nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/E100/2025/6", "E100", "2025", "6")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Year      int    `json:"year"`
		Month     int    `json:"month"`
		MonthName string `json:"month_name"`
		Grid      struct {
			Management []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"management"`
			Fields []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"fields"`
		} `json:"grid"`
		PrevURL string `json:"prev_url"`
		NextURL string `json:"next_url"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Year != 2025 || resp.Month != 6 || resp.MonthName != "June" {
		t.Errorf("unexpected month header %+v", resp)
	}
	// June 2025 starts on a Sunday (6 blanks) and spans 6 week rows.
	var total string
	for _, f := range resp.Grid.Management {
		if f.Name == "dailyentry_set-TOTAL_FORMS" {
			total = f.Value
		}
	}
	if total != "36" {
		t.Errorf("expected TOTAL_FORMS=36, got %q", total)
	}
	// The stored entry for June 3 surfaces as the zero-based field 2.
	found := false
	for _, f := range resp.Grid.Fields {
		if f.Name == "dailyentry_set-2-duration" {
			found = true
			if f.Value != "7.5" {
				t.Errorf("expected prefilled 7.5, got %q", f.Value)
			}
		}
	}
	if !found {
		t.Error("missing prefilled duration field for June 3")
	}
	if resp.PrevURL != "/api/timesheets/E100/2025/5" || resp.NextURL != "/api/timesheets/E100/2025/7" {
		t.Errorf("unexpected nav urls %q %q", resp.PrevURL, resp.NextURL)
	}
}

func TestCalendarGet_NoTimesheetYet(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/E100/2025/6", "E100", "2025", "6")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["monthly_entry"] != nil {
		t.Errorf("expected nil monthly_entry, got %v", resp["monthly_entry"])
	}
	if resp["grid"] == nil {
		t.Error("grid should render even without a timesheet")
	}
}

func TestCalendarGet_FutureMonthRedirectsToCurrent(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/E100/2025/9", "E100", "2025", "9")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/timesheets/E100/2025/6" {
		t.Errorf("expected redirect to current month, got %q", loc)
	}
}

func TestCalendarGet_FutureMonthAllowedByConfig(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{AllowFutureMonths: true})

	rec := calendarGet(h, "/api/timesheets/E100/2025/9", "E100", "2025", "9")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with AllowFutureMonths, got %d", rec.Code)
	}
}

func TestCalendarGet_PickerNormalizesToPath(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/E100/2025/6?ym=2025-03", "E100", "2025", "6")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/timesheets/E100/2025/3" {
		t.Errorf("expected redirect to picked month, got %q", loc)
	}
}

func TestCalendarGet_BadPickerValue(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/E100/2025/6?ym=March-2025", "E100", "2025", "6")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCalendarGet_UnknownEmployee(t *testing.T) {
	employees := &mockEmployeeRepo{
		getByIdentifierFunc: func(ctx context.Context, identifier string) (*model.Employee, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := newCalendarHandler(&mockTimesheetService{}, employees, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/nobody/2025/6", "nobody", "2025", "6")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCalendarGet_BadMonth(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarGet(h, "/api/timesheets/E100/2025/13", "E100", "2025", "13")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------
// POST
// ---------------------------------------------------------------

func TestCalendarPost_StartCreatesDraft(t *testing.T) {
	var created bool
	ts := &mockTimesheetService{
		getOrCreateMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, bool, error) {
			created = true
			if month.Day() != 1 {
				t.Errorf("expected first of month, got %v", month)
			}
			return &model.MonthlyEntry{ID: "m-1", EmployeeID: employeeID, Month: month, Status: model.StatusDraft}, true, nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{"start": {"1"}}
	rec := calendarPost(h, "E100", "2025", "6", form, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !created {
		t.Error("expected GetOrCreateMonthly to be called")
	}
}

func TestCalendarPost_StartFutureMonthForbidden(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{"start": {"1"}}
	rec := calendarPost(h, "E100", "2025", "12", form, "")

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestCalendarPost_MonthNavigation(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarPost(h, "E100", "2025", "1", url.Values{"controller": {"prev"}}, "")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/timesheets/E100/2024/12" {
		t.Errorf("prev across year bound, got %q", loc)
	}

	rec = calendarPost(h, "E100", "2025", "6", url.Values{"controller": {"next"}}, "")
	if loc := rec.Header().Get("Location"); loc != "/api/timesheets/E100/2025/7" {
		t.Errorf("next month, got %q", loc)
	}
}

func TestCalendarPost_SaveFormset(t *testing.T) {
	monthly := &model.MonthlyEntry{
		ID:         "m-1",
		EmployeeID: "emp-1",
		Month:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:     model.StatusDraft,
	}
	var gotEntries []formset.Entry
	var gotStrict bool
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return monthly, nil
		},
		saveEntriesFunc: func(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error {
			gotEntries, gotStrict = entries, strict
			return nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{
		"dailyentry_set-TOTAL_FORMS":   {"36"},
		"dailyentry_set-INITIAL_FORMS": {"0"},
		"dailyentry_set-0-day":         {"1"},
		"dailyentry_set-0-entry_type":  {"reg_hours"},
		"dailyentry_set-0-duration":    {"8"},
		"dailyentry_set-0-row":         {"0"},
		"dailyentry_set-1-day":         {"2"},
		"dailyentry_set-1-entry_type":  {"annual_leave"},
		"dailyentry_set-1-duration":    {"8"},
		"dailyentry_set-1-row":         {"0"},
	}
	rec := calendarPost(h, "E100", "2025", "6", form, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(gotEntries) != 2 {
		t.Fatalf("expected 2 decoded entries, got %d", len(gotEntries))
	}
	if gotEntries[1].EntryType != model.EntryTypeAnnualLeave {
		t.Errorf("unexpected entry type %q", gotEntries[1].EntryType)
	}
	if gotStrict {
		t.Error("save without submit should not be strict")
	}
}

func TestCalendarPost_SubmitIsStrict(t *testing.T) {
	monthly := &model.MonthlyEntry{ID: "m-1", Month: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
	var gotStrict bool
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return monthly, nil
		},
		saveEntriesFunc: func(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error {
			gotStrict = strict
			return nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{
		"dailyentry_set-TOTAL_FORMS":   {"36"},
		"dailyentry_set-INITIAL_FORMS": {"0"},
		"dailyentry_set-0-day":         {"1"},
		"dailyentry_set-0-duration":    {"8"},
		"submit":                       {"1"},
	}
	rec := calendarPost(h, "E100", "2025", "6", form, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !gotStrict {
		t.Error("submit should save strictly")
	}
}

func TestCalendarPost_NoFormsetMeansNoChanges(t *testing.T) {
	monthly := &model.MonthlyEntry{ID: "m-1", Month: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return monthly, nil
		},
		saveEntriesFunc: func(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error {
			t.Error("SaveEntries should not run without management fields")
			return nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarPost(h, "E100", "2025", "6", url.Values{"unrelated": {"x"}}, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Saved bool `json:"saved"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Saved {
		t.Error("nothing should have been saved")
	}
}

func TestCalendarPost_SaveWithoutTimesheet(t *testing.T) {
	h := newCalendarHandler(&mockTimesheetService{}, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{
		"dailyentry_set-TOTAL_FORMS":   {"36"},
		"dailyentry_set-INITIAL_FORMS": {"0"},
	}
	rec := calendarPost(h, "E100", "2025", "6", form, "")

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestCalendarPost_ReadOnlySheet(t *testing.T) {
	monthly := &model.MonthlyEntry{ID: "m-1", Status: model.StatusApproved, Month: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return monthly, nil
		},
		saveEntriesFunc: func(ctx context.Context, m *model.MonthlyEntry, entries []formset.Entry, strict, nightwatch bool) error {
			return service.ErrReadOnly
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{
		"dailyentry_set-TOTAL_FORMS":   {"36"},
		"dailyentry_set-INITIAL_FORMS": {"0"},
		"dailyentry_set-0-day":         {"1"},
		"dailyentry_set-0-duration":    {"8"},
	}
	rec := calendarPost(h, "E100", "2025", "6", form, "")

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestCalendarPost_ReviewPassesActor(t *testing.T) {
	monthly := &model.MonthlyEntry{ID: "m-1", Status: model.StatusSubmitted, Month: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
	var gotAction string
	var gotActor service.Actor
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return monthly, nil
		},
		reviewFunc: func(ctx context.Context, id string, action string, actor service.Actor, comment string) (*model.MonthlyEntry, error) {
			gotAction, gotActor = action, actor
			return monthly, nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	form := url.Values{
		"review_action":       {"approve"},
		"reviewer_first_name": {"Grace"},
		"reviewer_last_name":  {"Hopper"},
	}
	rec := calendarPost(h, "E100", "2025", "6", form, service.RoleSupervisor)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotAction != service.ActionApprove {
		t.Errorf("unexpected action %q", gotAction)
	}
	if gotActor.Role != service.RoleSupervisor || gotActor.Credentials() != "G. Hopper" {
		t.Errorf("unexpected actor %+v", gotActor)
	}
}

func TestCalendarPost_ReviewErrorMapping(t *testing.T) {
	monthly := &model.MonthlyEntry{ID: "m-1", Month: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"invalid transition", service.ErrInvalidTransition, http.StatusConflict},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := &mockTimesheetService{
				getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
					return monthly, nil
				},
				reviewFunc: func(ctx context.Context, id string, action string, actor service.Actor, comment string) (*model.MonthlyEntry, error) {
					return nil, tc.err
				},
			}
			h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

			form := url.Values{"review_action": {"approve"}}
			rec := calendarPost(h, "E100", "2025", "6", form, service.RoleSupervisor)

			if rec.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestCalendarPost_AutoFillPreview(t *testing.T) {
	monthly := &model.MonthlyEntry{ID: "m-1", Month: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
	ts := &mockTimesheetService{
		getMonthlyFunc: func(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
			return monthly, nil
		},
	}
	h := newCalendarHandler(ts, &mockEmployeeRepo{}, CalendarConfig{})

	rec := calendarPost(h, "E100", "2025", "6", url.Values{"auto_fill": {"1"}}, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Grid struct {
			Fields []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"fields"`
		} `json:"grid"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	filled := 0
	for _, f := range resp.Grid.Fields {
		if strings.HasSuffix(f.Name, "-duration") && f.Value == "8" {
			filled++
		}
	}
	// June has 30 days; every duration comes back as a full workday.
	if filled != 30 {
		t.Errorf("expected 30 filled durations, got %d", filled)
	}
}
