package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/timegrid/backend/internal/grid"
	"github.com/timegrid/backend/internal/model"
	"github.com/timegrid/backend/internal/repository"
)

// GridView is the rendered month grid a page needs: the week rows, the
// current field values, the formset counters and the state the client
// carries into later add-row calls.
type GridView struct {
	State      grid.State   `json:"state"`
	Rows       []grid.Row   `json:"rows"`
	Fields     []grid.Field `json:"fields"`
	Management []grid.Field `json:"management"`
}

// CalendarService owns the month arithmetic and grid assembly for the
// calendar page. Weeks run Monday through Sunday.
type CalendarService interface {
	// BlankDays returns how many leading cells of the month's first week
	// belong to the previous month (0..6).
	BlankDays(year int, month time.Month) int
	// WeeksInMonth returns the number of week rows the month occupies.
	WeeksInMonth(year int, month time.Month) int
	// MonthDays returns every date of the month in order.
	MonthDays(year int, month time.Month) []time.Time
	// AddMonths shifts year/month by delta, carrying across year bounds.
	AddMonths(year int, month time.Month, delta int) (int, time.Month)
	// IsFutureMonth reports whether year/month is after today's month.
	IsFutureMonth(year int, month time.Month, today time.Time) bool
	// BuildGrid renders the full month grid, prefilled from entries.
	BuildGrid(year int, month time.Month, entries []*model.DailyEntry) (*GridView, error)
	// AutoFilledGrid is BuildGrid with every duration set to the default
	// workday. Display-only; nothing is persisted until the form posts.
	AutoFilledGrid(year int, month time.Month, entries []*model.DailyEntry) (*GridView, error)
	// Holidays returns the month's holidays as "Y/M/D|..." for the page.
	// Nightwatch employees get an empty string; holidays do not apply.
	Holidays(ctx context.Context, year int, month time.Month, nightwatch bool) (string, error)
}

type calendarService struct {
	holidayRepo repository.HolidayRepository
	prefix      string
}

// NewCalendarService creates a CalendarService using the default formset
// prefix. holidayRepo can be nil when holiday display is not needed.
func NewCalendarService(holidayRepo repository.HolidayRepository) CalendarService {
	return &calendarService{holidayRepo: holidayRepo, prefix: grid.DefaultPrefix}
}

func (s *calendarService) BlankDays(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday is Sunday-based; shift to Monday-first.
	return (int(first.Weekday()) + 6) % 7
}

func (s *calendarService) WeeksInMonth(year int, month time.Month) int {
	cells := s.BlankDays(year, month) + daysInMonth(year, month)
	return (cells + grid.DaysPerWeek - 1) / grid.DaysPerWeek
}

func (s *calendarService) MonthDays(year int, month time.Month) []time.Time {
	n := daysInMonth(year, month)
	days := make([]time.Time, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}
	return days
}

func (s *calendarService) AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	idx := year*12 + int(month) - 1 + delta
	return idx / 12, time.Month(idx%12 + 1)
}

func (s *calendarService) IsFutureMonth(year int, month time.Month, today time.Time) bool {
	if year != today.Year() {
		return year > today.Year()
	}
	return month > today.Month()
}

func (s *calendarService) BuildGrid(year int, month time.Month, entries []*model.DailyEntry) (*GridView, error) {
	return s.buildGrid(year, month, entries, false)
}

func (s *calendarService) AutoFilledGrid(year int, month time.Month, entries []*model.DailyEntry) (*GridView, error) {
	return s.buildGrid(year, month, entries, true)
}

func (s *calendarService) buildGrid(year int, month time.Month, entries []*model.DailyEntry, autoFill bool) (*GridView, error) {
	state := grid.State{
		BlankDays:  s.BlankDays(year, month),
		TotalWeeks: s.WeeksInMonth(year, month),
	}

	form := grid.NewForm(s.prefix)
	var rows []grid.Row
	for state.RowCount < state.TotalWeeks {
		var row grid.Row
		row, state = grid.AddRow(state, s.prefix)
		form.AppendRow(row)
		rows = append(rows, row)
	}

	// Prefill from stored entries. Day index v binds fields keyed v-1.
	for _, e := range entries {
		if e.Day.Year() != year || e.Day.Month() != month {
			continue
		}
		i := e.Day.Day() - 1
		if err := form.SetField(grid.FieldName(s.prefix, i, "duration"), formatDuration(e.Duration)); err != nil {
			return nil, fmt.Errorf("prefill day %d: %w", e.Day.Day(), err)
		}
		if err := form.SetField(grid.FieldName(s.prefix, i, "entry_type"), e.EntryType); err != nil {
			return nil, fmt.Errorf("prefill day %d: %w", e.Day.Day(), err)
		}
	}

	if autoFill {
		if err := grid.AutoFill(state, s.prefix, form, grid.DefaultWorkdayHours); err != nil {
			return nil, err
		}
	}

	// Week rows always run 7 cells, so the last row can overshoot the
	// month's length. Rendered pages show those trailing cells blank and
	// never submit their fields; the decoder treats the holes like any
	// other gap. The TOTAL_FORMS counter stays on the row arithmetic.
	monthLen := daysInMonth(year, month)
	rows = trimOverrun(rows, monthLen)

	// Flatten the current values of the rendered cells into ordered fields.
	var fields []grid.Field
	for _, row := range rows {
		for _, d := range row.Days {
			for _, fld := range d.Fields {
				v, _ := form.Field(fld.Name)
				fields = append(fields, grid.Field{Name: fld.Name, Value: v})
			}
		}
	}

	return &GridView{
		State:      state,
		Rows:       rows,
		Fields:     fields,
		Management: grid.ManagementFields(s.prefix, state),
	}, nil
}

// trimOverrun blanks out day cells past the month's last day.
func trimOverrun(rows []grid.Row, monthLen int) []grid.Row {
	for ri, row := range rows {
		kept := row.Days[:0:0]
		for _, d := range row.Days {
			if d.Day <= monthLen {
				kept = append(kept, d)
			}
		}
		header := make([]grid.HeaderCell, len(row.Header))
		for hi, h := range row.Header {
			if h.Day > monthLen {
				header[hi] = grid.HeaderCell{Blank: true}
			} else {
				header[hi] = h
			}
		}
		rows[ri].Days = kept
		rows[ri].Header = header
	}
	return rows
}

func (s *calendarService) Holidays(ctx context.Context, year int, month time.Month, nightwatch bool) (string, error) {
	if nightwatch || s.holidayRepo == nil {
		return "", nil
	}
	holidays, err := s.holidayRepo.ListByMonth(ctx, year, int(month))
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(holidays))
	for _, h := range holidays {
		parts = append(parts, fmt.Sprintf("%d/%d/%d",
			h.LocalDate.Year(), int(h.LocalDate.Month()), h.LocalDate.Day()))
	}
	return strings.Join(parts, "|"), nil
}

// daysInMonth normalizes day 0 of the next month to this month's last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func formatDuration(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
