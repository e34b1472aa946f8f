package model

import "time"

// Timesheet statuses, in lifecycle order. Rejected and verified are
// terminal for the employee; HR can retract a verified sheet back to
// approved.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusVerified  = "verified"
	StatusRejected  = "rejected"
)

// MonthlyEntry is one employee's timesheet for one month.
type MonthlyEntry struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employee_id"`
	Month             time.Time  `json:"month"` // first day of the month
	Status            string     `json:"status"`
	Comment           string     `json:"comment,omitempty"`
	MonthlyOvertime   float64    `json:"monthly_overtime"`
	AnnualLeaveTaken  float64    `json:"annual_leave_taken"`
	SubmittedDatetime *time.Time `json:"submitted_datetime,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	ApprovedDate      *time.Time `json:"approved_date,omitempty"`
	VerifiedBy        string     `json:"verified_by,omitempty"`
	VerifiedDate      *time.Time `json:"verified_date,omitempty"`
	RejectedBy        string     `json:"rejected_by,omitempty"`
	RejectedDate      *time.Time `json:"rejected_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsFinal reports whether the sheet reached a state the employee can no
// longer edit out of.
func (m *MonthlyEntry) IsFinal() bool {
	return m.Status == StatusVerified
}

// StatusBadgeColor maps the status to the badge style the dashboard shows.
func (m *MonthlyEntry) StatusBadgeColor() string {
	switch m.Status {
	case StatusSubmitted:
		return "info"
	case StatusApproved:
		return "primary"
	case StatusVerified:
		return "success"
	case StatusRejected:
		return "danger"
	default:
		return "secondary"
	}
}

// ReviewPatch holds the fields a review action updates.
type ReviewPatch struct {
	Status            string
	Comment           *string
	SubmittedDatetime *time.Time
	ApprovedBy        *string
	ApprovedDate      *time.Time
	VerifiedBy        *string
	VerifiedDate      *time.Time
	RejectedBy        *string
	RejectedDate      *time.Time
	ClearVerification bool
}
