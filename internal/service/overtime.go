package service

import (
	"time"

	"github.com/timegrid/backend/internal/grid"
	"github.com/timegrid/backend/internal/model"
)

// NightwatchWorkdayHours is the overtime base for night-shift employees.
const NightwatchWorkdayHours = 12

// ComputeMonthlyOvertime sums the hours worked beyond each entry's base:
// regular weekday hours over the workday base, weekend entries in full,
// and holiday entries beyond a standard workday. Nightwatch employees use
// a 12 hour base and their weekend/holiday entries are measured against it.
func ComputeMonthlyOvertime(entries []*model.DailyEntry, nightwatch bool) float64 {
	base := float64(grid.DefaultWorkdayHours)
	if nightwatch {
		base = NightwatchWorkdayHours
	}

	var extra float64
	for _, e := range entries {
		switch {
		case e.EntryType == model.EntryTypeRegularHours && isWeekday(e.Day):
			if e.Duration > base {
				extra += e.Duration - base
			}
		case e.EntryType == model.EntryTypeWeekend || (nightwatch && isWeekendDay(e.Day)):
			if nightwatch {
				if e.Duration > base {
					extra += e.Duration - base
				}
			} else {
				// Weekends have no expected hours; everything counts.
				extra += e.Duration
			}
		case e.EntryType == model.EntryTypeHoliday:
			holidayBase := float64(grid.DefaultWorkdayHours)
			if nightwatch {
				holidayBase = NightwatchWorkdayHours
			}
			if e.Duration > holidayBase {
				extra += e.Duration - holidayBase
			}
		}
	}
	return extra
}

// ComputeLeaveTaken returns the annual leave consumed in the month, in
// days, from the recorded annual-leave entry durations.
func ComputeLeaveTaken(entries []*model.DailyEntry) float64 {
	var hours float64
	for _, e := range entries {
		if e.EntryType == model.EntryTypeAnnualLeave {
			hours += e.Duration
		}
	}
	return hours / float64(grid.DefaultWorkdayHours)
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func isWeekendDay(t time.Time) bool { return !isWeekday(t) }
