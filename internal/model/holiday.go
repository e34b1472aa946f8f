package model

import "time"

// Holiday is a facility holiday shown as non-working on the calendar.
type Holiday struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LocalDate time.Time `json:"local_date"`
}
