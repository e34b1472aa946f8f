// Package grid computes the weekly rows of a month-view timesheet and the
// positional field names its entries are submitted under. The arithmetic
// here has to agree with what the form backend expects: day indices are
// contiguous and 1-based across the whole grid, field identifiers are
// 0-based, and only the first row carries blank placeholder cells.
package grid

import "strconv"

const (
	// DaysPerWeek is the number of cells in a full row.
	DaysPerWeek = 7

	// EntryTypeRegularHours is the entry type every generated day starts with.
	EntryTypeRegularHours = "reg_hours"

	// DefaultWorkdayHours is the duration auto-fill writes into every day.
	DefaultWorkdayHours = 8

	// MaxDayForms caps the formset at the longest possible month.
	MaxDayForms = 31

	// MaxWeekRows is the most week rows any month can occupy. Because week
	// rows always run 7 cells, the form counter can exceed MaxDayForms; the
	// grid's true capacity is MaxWeekRows * DaysPerWeek.
	MaxWeekRows = 6
)

// State is the per-page session state for one month view. It is created
// from the page's initial hidden values, passed into each operation and
// returned updated; nothing in this package holds state between calls.
type State struct {
	RowCount   int // week rows generated so far
	BlankDays  int // leading previous-month cells in row 0 (0..6)
	TotalWeeks int // target number of week rows for this month
}

// Field is a single named form value.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HeaderCell is one cell of a row's header: either a blank placeholder or
// a day number.
type HeaderCell struct {
	Blank bool `json:"blank"`
	Day   int  `json:"day,omitempty"`
}

// DayCell is one editable day. Day is the 1-based index shown to the user;
// the field identifiers inside Fields are keyed by Day-1.
type DayCell struct {
	Day    int     `json:"day"`
	Fields []Field `json:"fields"`
}

// SummaryCell is the trailing cell of a row. Total is a literal "0"; a
// computed per-row sum was never wired up.
type SummaryCell struct {
	Total     string `json:"total"`
	Removable bool   `json:"removable"`
}

// Row is one generated week row. Rows are append-only and keep the Index
// they were created with.
type Row struct {
	Index   int          `json:"index"`
	Blanks  int          `json:"blanks"`
	Header  []HeaderCell `json:"header"`
	Days    []DayCell    `json:"days"`
	Summary SummaryCell  `json:"summary"`
}

// Empty reports whether the row carries no day cells, i.e. AddRow was
// called past the week limit.
func (r Row) Empty() bool { return len(r.Days) == 0 }

// AddRow produces the next week row for the grid and the updated state.
// Calling it when the grid already has TotalWeeks rows is a no-op: it
// returns an empty row and the state unchanged, so repeated clicks past
// the limit stay idempotent.
//
// Row 0 opens with BlankDays placeholder cells and runs days 1 through
// 7-BlankDays. Every later row N holds the seven days following
// (N-1)*7 + (7-BlankDays).
func AddRow(s State, prefix string) (Row, State) {
	if s.RowCount >= s.TotalWeeks {
		return Row{}, s
	}

	row := Row{Index: s.RowCount}

	var first, last int
	if s.RowCount == 0 {
		for i := 0; i < s.BlankDays; i++ {
			row.Header = append(row.Header, HeaderCell{Blank: true})
		}
		row.Blanks = s.BlankDays
		first = 1
		last = DaysPerWeek - s.BlankDays
	} else {
		base := (s.RowCount-1)*DaysPerWeek + (DaysPerWeek - s.BlankDays)
		first = base + 1
		last = base + DaysPerWeek
	}

	for v := first; v <= last; v++ {
		row.Header = append(row.Header, HeaderCell{Day: v})
		row.Days = append(row.Days, newDayCell(prefix, v, row.Index))
	}
	row.Summary = SummaryCell{Total: "0", Removable: true}

	s.RowCount++
	return row, s
}

func newDayCell(prefix string, day, rowIndex int) DayCell {
	i := day - 1 // identifiers are 0-based, display values 1-based
	return DayCell{
		Day: day,
		Fields: []Field{
			{Name: FieldName(prefix, i, "day"), Value: strconv.Itoa(day)},
			{Name: FieldName(prefix, i, "entry_type"), Value: EntryTypeRegularHours},
			{Name: FieldName(prefix, i, "duration"), Value: "0"},
			{Name: FieldName(prefix, i, "row"), Value: strconv.Itoa(rowIndex)},
		},
	}
}
