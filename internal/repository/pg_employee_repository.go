package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timegrid/backend/internal/model"
)

type pgEmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewPgEmployeeRepository returns a PostgreSQL-backed EmployeeRepository.
func NewPgEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &pgEmployeeRepository{pool: pool}
}

const employeeSelectCols = `id, identifier, first_name, last_name, email,
	job_title, COALESCE(department, ''), created_at, updated_at`

func scanEmployee(scan func(...any) error) (*model.Employee, error) {
	e := &model.Employee{}
	err := scan(
		&e.ID, &e.Identifier, &e.FirstName, &e.LastName, &e.Email,
		&e.JobTitle, &e.Department, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (r *pgEmployeeRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.Employee, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+employeeSelectCols+` FROM employees WHERE identifier = $1`, identifier)
	return scanEmployee(row.Scan)
}

func (r *pgEmployeeRepository) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+employeeSelectCols+` FROM employees WHERE email = $1`, email)
	return scanEmployee(row.Scan)
}

func (r *pgEmployeeRepository) List(ctx context.Context, department string, limit, offset int) ([]*model.Employee, error) {
	query := `SELECT ` + employeeSelectCols + ` FROM employees`
	args := []any{}
	if department != "" {
		query += ` WHERE department = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
		args = append(args, department, limit, offset)
	} else {
		query += ` ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
