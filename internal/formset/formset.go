// Package formset decodes submitted day entries from their positional
// field names, mirroring the counters and naming the grid package emits.
package formset

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/timegrid/backend/internal/grid"
)

// ErrNotSubmitted means the POST carried no management fields at all: the
// page was opened but nothing was saved. Callers treat it as "no changes",
// not as a failure.
var ErrNotSubmitted = errors.New("formset: management fields missing")

// ErrTooManyForms is returned when TOTAL_FORMS exceeds the grid capacity.
var ErrTooManyForms = errors.New("formset: too many forms")

// Entry is one decoded day entry.
type Entry struct {
	Index     int // 0-based position in the formset
	Day       int // 1-based day index as displayed
	EntryType string
	Duration  float64
	Row       int
}

// Decode reads the management counters and every positional entry from
// submitted form values. Entries whose fields were removed from the page
// (removed rows leave gaps) are skipped, matching what the browser would
// have submitted.
func Decode(vals url.Values, prefix string) ([]Entry, error) {
	totalRaw := vals.Get(prefix + "-TOTAL_FORMS")
	initialRaw := vals.Get(prefix + "-INITIAL_FORMS")
	if totalRaw == "" || initialRaw == "" {
		return nil, ErrNotSubmitted
	}

	total, err := strconv.Atoi(totalRaw)
	if err != nil {
		return nil, fmt.Errorf("formset: bad TOTAL_FORMS %q: %w", totalRaw, err)
	}
	if total < 0 {
		return nil, fmt.Errorf("formset: negative TOTAL_FORMS %d", total)
	}
	// The counter runs on full 7-cell rows, so it can sit above the number
	// of days in the month; only counts past a whole 6-week grid are bogus.
	if total > grid.MaxWeekRows*grid.DaysPerWeek {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyForms, total, grid.MaxWeekRows*grid.DaysPerWeek)
	}

	var entries []Entry
	for i := 0; i < total; i++ {
		dayRaw := vals.Get(grid.FieldName(prefix, i, "day"))
		if dayRaw == "" {
			// Gap left by a removed row.
			continue
		}
		day, err := strconv.Atoi(dayRaw)
		if err != nil {
			return nil, fmt.Errorf("formset: entry %d: bad day %q: %w", i, dayRaw, err)
		}

		duration := 0.0
		if durRaw := vals.Get(grid.FieldName(prefix, i, "duration")); durRaw != "" {
			duration, err = strconv.ParseFloat(durRaw, 64)
			if err != nil {
				return nil, fmt.Errorf("formset: entry %d: bad duration %q: %w", i, durRaw, err)
			}
		}

		row := 0
		if rowRaw := vals.Get(grid.FieldName(prefix, i, "row")); rowRaw != "" {
			row, err = strconv.Atoi(rowRaw)
			if err != nil {
				return nil, fmt.Errorf("formset: entry %d: bad row %q: %w", i, rowRaw, err)
			}
		}

		entryType := vals.Get(grid.FieldName(prefix, i, "entry_type"))
		if entryType == "" {
			entryType = grid.EntryTypeRegularHours
		}

		entries = append(entries, Entry{
			Index:     i,
			Day:       day,
			EntryType: entryType,
			Duration:  duration,
			Row:       row,
		})
	}
	return entries, nil
}
