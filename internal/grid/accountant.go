package grid

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrFieldNotFound is returned when an operation references a field that
// was never rendered, e.g. auto-fill over a removed row. Callers report it
// and carry on; it is never fatal to the page.
var ErrFieldNotFound = errors.New("field not found")

// FieldStore is the write side of a Form Renderer: something that can
// mutate the value of an already rendered field.
type FieldStore interface {
	SetField(name, value string) error
}

// TotalFormCount derives the TOTAL_FORMS counter from the row arithmetic:
// (RowCount-1)*7 + (7-BlankDays), the number of day entries AddRow has
// produced. It is recomputed at submission time, not tracked, so it must
// stay in lockstep with AddRow's index math.
//
// For RowCount == 0 the raw formula goes negative; an empty grid reports 0.
func TotalFormCount(s State) int {
	if s.RowCount == 0 {
		return 0
	}
	return (s.RowCount-1)*DaysPerWeek + (DaysPerWeek - s.BlankDays)
}

// AutoFill sets the duration field of every generated day to hours. The
// day count is RowCount*7 - BlankDays. A missing field aborts the fill
// with a wrapped ErrFieldNotFound; fields already written stay written.
func AutoFill(s State, prefix string, store FieldStore, hours int) error {
	cols := s.RowCount*DaysPerWeek - s.BlankDays
	for i := 0; i < cols; i++ {
		name := FieldName(prefix, i, "duration")
		if err := store.SetField(name, strconv.Itoa(hours)); err != nil {
			return fmt.Errorf("auto-fill %s: %w", name, err)
		}
	}
	return nil
}
