package service

import (
	"testing"
	"time"

	"github.com/timegrid/backend/internal/model"
)

func entry(day time.Time, entryType string, duration float64) *model.DailyEntry {
	return &model.DailyEntry{Day: day, EntryType: entryType, Duration: duration}
}

// 2025-06-02 Monday, 2025-06-07 Saturday, 2025-06-08 Sunday.
var (
	monday   = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)
)

func TestOvertime_RegularWeekdayOverBase(t *testing.T) {
	entries := []*model.DailyEntry{
		entry(monday, model.EntryTypeRegularHours, 10),
		entry(monday.AddDate(0, 0, 1), model.EntryTypeRegularHours, 8),
		entry(monday.AddDate(0, 0, 2), model.EntryTypeRegularHours, 6),
	}
	if got := ComputeMonthlyOvertime(entries, false); got != 2 {
		t.Errorf("expected 2h overtime, got %v", got)
	}
}

func TestOvertime_WeekendCountsInFull(t *testing.T) {
	entries := []*model.DailyEntry{
		entry(saturday, model.EntryTypeWeekend, 5),
	}
	if got := ComputeMonthlyOvertime(entries, false); got != 5 {
		t.Errorf("expected 5h weekend overtime, got %v", got)
	}
}

func TestOvertime_HolidayOverStandardDay(t *testing.T) {
	entries := []*model.DailyEntry{
		entry(monday, model.EntryTypeHoliday, 10),
		entry(monday.AddDate(0, 0, 1), model.EntryTypeHoliday, 8),
	}
	if got := ComputeMonthlyOvertime(entries, false); got != 2 {
		t.Errorf("expected 2h holiday overtime, got %v", got)
	}
}

func TestOvertime_NightwatchUsesTwelveHourBase(t *testing.T) {
	entries := []*model.DailyEntry{
		entry(monday, model.EntryTypeRegularHours, 13),  // 1 over
		entry(saturday, model.EntryTypeRegularHours, 14), // weekend day, 2 over
		entry(monday.AddDate(0, 0, 1), model.EntryTypeRegularHours, 11),
	}
	if got := ComputeMonthlyOvertime(entries, true); got != 3 {
		t.Errorf("expected 3h nightwatch overtime, got %v", got)
	}
}

func TestOvertime_RegularHoursOnWeekendIgnoredForDayStaff(t *testing.T) {
	entries := []*model.DailyEntry{
		entry(saturday, model.EntryTypeRegularHours, 10),
	}
	if got := ComputeMonthlyOvertime(entries, false); got != 0 {
		t.Errorf("weekend regular hours should not count for day staff, got %v", got)
	}
}

func TestLeaveTaken(t *testing.T) {
	entries := []*model.DailyEntry{
		entry(monday, model.EntryTypeAnnualLeave, 8),
		entry(monday.AddDate(0, 0, 1), model.EntryTypeAnnualLeave, 4),
		entry(monday.AddDate(0, 0, 2), model.EntryTypeRegularHours, 8),
	}
	if got := ComputeLeaveTaken(entries); got != 1.5 {
		t.Errorf("expected 1.5 days leave, got %v", got)
	}
}
