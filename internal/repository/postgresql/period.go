package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) Create(ctx context.Context, p period.PayPeriod) (period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_periods (id, period_start, period_end, period_type, status)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, period_start, period_end, period_type, status, created_at, updated_at
	`

	var created period.PayPeriod
	err := q.QueryRow(ctx, query, p.PeriodStart, p.PeriodEnd, p.PeriodType, p.Status).Scan(
		&created.ID, &created.PeriodStart, &created.PeriodEnd, &created.PeriodType,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return period.PayPeriod{}, fmt.Errorf("failed to create pay period: %w", err)
	}

	return created, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, period_type, status, created_at, updated_at
		FROM pay_periods
		WHERE id = $1
	`

	var p period.PayPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.PeriodStart, &p.PeriodEnd, &p.PeriodType, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.PayPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) List(ctx context.Context, status *string) ([]period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, period_type, status, created_at, updated_at
		FROM pay_periods
	`
	args := []interface{}{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY period_start DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	defer rows.Close()

	var periods []period.PayPeriod
	for rows.Next() {
		var p period.PayPeriod
		if err := rows.Scan(
			&p.ID, &p.PeriodStart, &p.PeriodEnd, &p.PeriodType, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *periodRepository) UpdateStatus(ctx context.Context, id string, status period.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE pay_periods SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update pay period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return period.ErrPeriodNotFound
	}

	return nil
}

func (r *periodRepository) CountOverlapping(ctx context.Context, periodType string, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM pay_periods
		WHERE period_type = $1
		  AND status IN ('open', 'closed')
		  AND period_start <= $3
		  AND period_end >= $2
	`

	var count int64
	if err := q.QueryRow(ctx, query, periodType, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overlapping pay periods: %w", err)
	}

	return count, nil
}
