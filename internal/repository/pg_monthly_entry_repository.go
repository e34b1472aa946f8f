package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timegrid/backend/internal/model"
)

type pgMonthlyEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgMonthlyEntryRepository returns a PostgreSQL-backed MonthlyEntryRepository.
func NewPgMonthlyEntryRepository(pool *pgxpool.Pool) MonthlyEntryRepository {
	return &pgMonthlyEntryRepository{pool: pool}
}

const monthlyEntrySelectCols = `id, employee_id, month, status, COALESCE(comment, ''),
	monthly_overtime, annual_leave_taken, submitted_datetime,
	COALESCE(approved_by, ''), approved_date, COALESCE(verified_by, ''), verified_date,
	COALESCE(rejected_by, ''), rejected_date, created_at, updated_at`

func scanMonthlyEntry(scan func(...any) error) (*model.MonthlyEntry, error) {
	m := &model.MonthlyEntry{}
	err := scan(
		&m.ID, &m.EmployeeID, &m.Month, &m.Status, &m.Comment,
		&m.MonthlyOvertime, &m.AnnualLeaveTaken, &m.SubmittedDatetime,
		&m.ApprovedBy, &m.ApprovedDate, &m.VerifiedBy, &m.VerifiedDate,
		&m.RejectedBy, &m.RejectedDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *pgMonthlyEntryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*model.MonthlyEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+monthlyEntrySelectCols+`
		 FROM monthly_entries
		 WHERE employee_id = $1 AND month = $2`,
		employeeID, month)
	return scanMonthlyEntry(row.Scan)
}

func (r *pgMonthlyEntryRepository) GetByID(ctx context.Context, id string) (*model.MonthlyEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+monthlyEntrySelectCols+` FROM monthly_entries WHERE id = $1`, id)
	return scanMonthlyEntry(row.Scan)
}

func (r *pgMonthlyEntryRepository) Create(ctx context.Context, m *model.MonthlyEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO monthly_entries (id, employee_id, month, status)
		 VALUES ($1, $2, $3, $4)`,
		m.ID, m.EmployeeID, m.Month, m.Status)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicate
	}
	return err
}

func (r *pgMonthlyEntryRepository) ApplyReview(ctx context.Context, id string, patch model.ReviewPatch) error {
	setClauses := []string{}
	args := []any{}
	argIdx := 1

	add := func(clause string, val any) {
		setClauses = append(setClauses, fmt.Sprintf(clause, argIdx))
		args = append(args, val)
		argIdx++
	}

	add("status = $%d", patch.Status)
	if patch.Comment != nil {
		add("comment = NULLIF($%d, '')", *patch.Comment)
	}
	if patch.SubmittedDatetime != nil {
		add("submitted_datetime = $%d", *patch.SubmittedDatetime)
	}
	if patch.ApprovedBy != nil {
		add("approved_by = NULLIF($%d, '')", *patch.ApprovedBy)
	}
	if patch.ApprovedDate != nil {
		add("approved_date = $%d", *patch.ApprovedDate)
	}
	if patch.VerifiedBy != nil {
		add("verified_by = NULLIF($%d, '')", *patch.VerifiedBy)
	}
	if patch.VerifiedDate != nil {
		add("verified_date = $%d", *patch.VerifiedDate)
	}
	if patch.RejectedBy != nil {
		add("rejected_by = NULLIF($%d, '')", *patch.RejectedBy)
	}
	if patch.RejectedDate != nil {
		add("rejected_date = $%d", *patch.RejectedDate)
	}
	if patch.ClearVerification {
		setClauses = append(setClauses, "verified_by = NULL", "verified_date = NULL")
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE monthly_entries SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argIdx)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgMonthlyEntryRepository) UpdateTotals(ctx context.Context, id string, overtime, leaveTaken float64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE monthly_entries
		 SET monthly_overtime = $1, annual_leave_taken = $2, updated_at = NOW()
		 WHERE id = $3`,
		overtime, leaveTaken, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func monthlyEntryWhere(filter MonthlyEntryFilter, args *[]any) string {
	clauses := []string{}
	idx := len(*args) + 1
	if filter.EmployeeID != "" {
		clauses = append(clauses, fmt.Sprintf("employee_id = $%d", idx))
		*args = append(*args, filter.EmployeeID)
		idx++
	}
	if len(filter.Statuses) > 0 {
		clauses = append(clauses, fmt.Sprintf("status = ANY($%d)", idx))
		*args = append(*args, filter.Statuses)
		idx++
	} else if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		*args = append(*args, filter.Status)
		idx++
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func (r *pgMonthlyEntryRepository) List(ctx context.Context, filter MonthlyEntryFilter, limit, offset int) ([]*model.MonthlyEntry, error) {
	args := []any{}
	query := `SELECT ` + monthlyEntrySelectCols + ` FROM monthly_entries` +
		monthlyEntryWhere(filter, &args)
	query += fmt.Sprintf(" ORDER BY month DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.MonthlyEntry
	for rows.Next() {
		m, err := scanMonthlyEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *pgMonthlyEntryRepository) Count(ctx context.Context, filter MonthlyEntryFilter) (int, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM monthly_entries` + monthlyEntryWhere(filter, &args)

	var total int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}
