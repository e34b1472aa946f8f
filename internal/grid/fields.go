package grid

import (
	"fmt"
	"strconv"
)

// DefaultPrefix is the entity prefix the backend formset binds under.
const DefaultPrefix = "dailyentry_set"

// FieldName builds the positional identifier for one attribute of one day
// entry: <prefix>-<index>-<attr>, with index 0-based.
func FieldName(prefix string, index int, attr string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, index, attr)
}

// ManagementFields returns the formset bookkeeping counters the backend
// requires alongside the day fields. INITIAL_FORMS and MIN_NUM_FORMS are
// always zero; MAX_NUM_FORMS is always the 31-day cap.
func ManagementFields(prefix string, s State) []Field {
	return []Field{
		{Name: prefix + "-TOTAL_FORMS", Value: strconv.Itoa(TotalFormCount(s))},
		{Name: prefix + "-INITIAL_FORMS", Value: "0"},
		{Name: prefix + "-MIN_NUM_FORMS", Value: "0"},
		{Name: prefix + "-MAX_NUM_FORMS", Value: strconv.Itoa(MaxDayForms)},
	}
}
