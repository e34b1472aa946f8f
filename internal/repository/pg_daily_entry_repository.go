package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timegrid/backend/internal/model"
)

type pgDailyEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgDailyEntryRepository returns a PostgreSQL-backed DailyEntryRepository.
func NewPgDailyEntryRepository(pool *pgxpool.Pool) DailyEntryRepository {
	return &pgDailyEntryRepository{pool: pool}
}

const dailyEntrySelectCols = `id, monthly_entry_id, day, entry_type, duration,
	row_index, created_at, updated_at`

func scanDailyEntry(scan func(...any) error) (*model.DailyEntry, error) {
	d := &model.DailyEntry{}
	return d, scan(
		&d.ID, &d.MonthlyEntryID, &d.Day, &d.EntryType,
		&d.Duration, &d.Row, &d.CreatedAt, &d.UpdatedAt,
	)
}

func (r *pgDailyEntryRepository) ListByMonthlyEntry(ctx context.Context, monthlyEntryID string) ([]*model.DailyEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+dailyEntrySelectCols+`
		 FROM daily_entries
		 WHERE monthly_entry_id = $1
		 ORDER BY day`,
		monthlyEntryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.DailyEntry
	for rows.Next() {
		d, err := scanDailyEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *pgDailyEntryRepository) CreateMissing(ctx context.Context, monthlyEntryID string, days []time.Time) (int, error) {
	created := 0
	for _, day := range days {
		tag, err := r.pool.Exec(ctx,
			`INSERT INTO daily_entries (monthly_entry_id, day, entry_type, duration, row_index)
			 VALUES ($1, $2, $3, 0, 0)
			 ON CONFLICT (monthly_entry_id, day) DO NOTHING`,
			monthlyEntryID, day, model.EntryTypeRegularHours)
		if err != nil {
			return created, err
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

func (r *pgDailyEntryRepository) UpsertDay(ctx context.Context, monthlyEntryID string, day time.Time, entryType string, duration float64, row int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO daily_entries (monthly_entry_id, day, entry_type, duration, row_index)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (monthly_entry_id, day)
		 DO UPDATE SET entry_type = $3, duration = $4, row_index = $5, updated_at = NOW()`,
		monthlyEntryID, day, entryType, duration, row)
	return err
}
