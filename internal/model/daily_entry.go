package model

import "time"

// Daily entry types. Regular hours is what the grid generates; the others
// are picked by the employee when editing a day.
const (
	EntryTypeRegularHours = "reg_hours"
	EntryTypeWeekend      = "weekend"
	EntryTypeHoliday      = "holiday"
	EntryTypeAnnualLeave  = "annual_leave"
	EntryTypeSickLeave    = "sick_leave"
)

// EntryTypeChoices lists the selectable entry types with display labels,
// in menu order.
func EntryTypeChoices() []EntryTypeChoice {
	return []EntryTypeChoice{
		{Value: EntryTypeRegularHours, Label: "Regular hours"},
		{Value: EntryTypeWeekend, Label: "Weekend"},
		{Value: EntryTypeHoliday, Label: "Holiday"},
		{Value: EntryTypeAnnualLeave, Label: "Annual leave"},
		{Value: EntryTypeSickLeave, Label: "Sick leave"},
	}
}

// EntryTypeChoice pairs a stored entry type with its display label.
type EntryTypeChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DailyEntry is one calendar day's record inside a monthly entry. Row is
// the zero-based week row the day was rendered in.
type DailyEntry struct {
	ID             string    `json:"id"`
	MonthlyEntryID string    `json:"monthly_entry_id"`
	Day            time.Time `json:"day"`
	EntryType      string    `json:"entry_type"`
	Duration       float64   `json:"duration"`
	Row            int       `json:"row"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
