package repository

import (
	"context"

	"github.com/timegrid/backend/internal/model"
)

// EmployeeRepository handles persistence for employees.
type EmployeeRepository interface {
	// GetByIdentifier returns the employee with the given personnel identifier.
	GetByIdentifier(ctx context.Context, identifier string) (*model.Employee, error)
	// GetByEmail returns the employee owning the given email address.
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	// List returns employees, newest first, optionally filtered by department.
	List(ctx context.Context, department string, limit, offset int) ([]*model.Employee, error)
}
