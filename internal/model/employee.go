package model

import (
	"strings"
	"time"
)

// Employee is a timesheet owner. Identifier is the human-facing personnel
// ID used in URLs; ID is the storage key.
type Employee struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	JobTitle   string    `json:"job_title"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsNightwatch reports whether the employee works night shifts, which
// raises the overtime base from 8 to 12 hours.
func (e *Employee) IsNightwatch() bool {
	return strings.Contains(strings.ToLower(e.JobTitle), "night")
}
