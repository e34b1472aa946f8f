package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timegrid/backend/internal/model"
)

type pgHolidayRepository struct {
	pool *pgxpool.Pool
}

// NewPgHolidayRepository returns a PostgreSQL-backed HolidayRepository.
func NewPgHolidayRepository(pool *pgxpool.Pool) HolidayRepository {
	return &pgHolidayRepository{pool: pool}
}

func (r *pgHolidayRepository) ListByMonth(ctx context.Context, year, month int) ([]*model.Holiday, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, local_date
		 FROM holidays
		 WHERE EXTRACT(YEAR FROM local_date) = $1 AND EXTRACT(MONTH FROM local_date) = $2
		 ORDER BY local_date`,
		year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Holiday
	for rows.Next() {
		h := &model.Holiday{}
		if err := rows.Scan(&h.ID, &h.Name, &h.LocalDate); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
