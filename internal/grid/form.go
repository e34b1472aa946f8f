package grid

import (
	"fmt"
	"net/url"
)

// Form is an in-memory Form Renderer: it accumulates rendered rows and
// keeps every generated field addressable by name, the way the page keeps
// them in the DOM. It implements FieldStore for AutoFill.
type Form struct {
	prefix string
	rows   []Row
	fields map[string]string
}

// NewForm returns an empty Form for the given entity prefix.
func NewForm(prefix string) *Form {
	return &Form{prefix: prefix, fields: make(map[string]string)}
}

// AppendRow registers a row produced by AddRow. Empty rows (AddRow past
// the week limit) are ignored.
func (f *Form) AppendRow(row Row) {
	if row.Empty() {
		return
	}
	f.rows = append(f.rows, row)
	for _, d := range row.Days {
		for _, fld := range d.Fields {
			f.fields[fld.Name] = fld.Value
		}
	}
}

// Rows returns the rows still on display, in creation order.
func (f *Form) Rows() []Row { return f.rows }

// Field returns the current value of a rendered field.
func (f *Form) Field(name string) (string, bool) {
	v, ok := f.fields[name]
	return v, ok
}

// SetField overwrites the value of a rendered field.
func (f *Form) SetField(name, value string) error {
	if _, ok := f.fields[name]; !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	f.fields[name] = value
	return nil
}

// RemoveRow takes a row off display and drops its fields, leaving every
// other row untouched. Counters and day indices are NOT renumbered: the
// remaining rows keep the indices they were created with, so removal
// leaves a gap in the submitted sequence. That matches the page this
// replaces; see DESIGN.md before changing it.
func (f *Form) RemoveRow(index int) error {
	for i, row := range f.rows {
		if row.Index != index {
			continue
		}
		for _, d := range row.Days {
			for _, fld := range d.Fields {
				delete(f.fields, fld.Name)
			}
		}
		f.rows = append(f.rows[:i], f.rows[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: row %d", ErrFieldNotFound, index)
}

// Values flattens the current field values plus the formset management
// counters for s into submittable form values.
func (f *Form) Values(s State) url.Values {
	vals := url.Values{}
	for _, row := range f.rows {
		for _, d := range row.Days {
			for _, fld := range d.Fields {
				if v, ok := f.fields[fld.Name]; ok {
					vals.Set(fld.Name, v)
				}
			}
		}
	}
	for _, fld := range ManagementFields(f.prefix, s) {
		vals.Set(fld.Name, fld.Value)
	}
	return vals
}
