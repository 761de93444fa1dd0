package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type workEntryRepository struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) workentry.WorkEntryRepository {
	return &workEntryRepository{db: db}
}

func (r *workEntryRepository) Upsert(ctx context.Context, e workentry.WorkEntry) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_entries (
			id, employee_id, pay_period_id, work_date, hours_worked, leads_processed, spifs, notes
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, pay_period_id, work_date) DO UPDATE SET
			hours_worked = EXCLUDED.hours_worked,
			leads_processed = EXCLUDED.leads_processed,
			spifs = EXCLUDED.spifs,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, employee_id, pay_period_id, work_date, hours_worked, leads_processed,
			spifs, notes, created_at, updated_at
	`

	var saved workentry.WorkEntry
	err := q.QueryRow(ctx, query,
		e.EmployeeID, e.PayPeriodID, e.WorkDate, e.HoursWorked, e.LeadsProcessed, e.Spifs, e.Notes,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.PayPeriodID, &saved.WorkDate, &saved.HoursWorked,
		&saved.LeadsProcessed, &saved.Spifs, &saved.Notes, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return workentry.WorkEntry{}, fmt.Errorf("failed to upsert work entry: %w", err)
	}

	return saved, nil
}

func (r *workEntryRepository) GetByID(ctx context.Context, id string) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, pay_period_id, work_date, hours_worked, leads_processed,
			   spifs, notes, created_at, updated_at
		FROM work_entries
		WHERE id = $1
	`

	var e workentry.WorkEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeID, &e.PayPeriodID, &e.WorkDate, &e.HoursWorked,
		&e.LeadsProcessed, &e.Spifs, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
		}
		return workentry.WorkEntry{}, fmt.Errorf("failed to get work entry: %w", err)
	}

	return e, nil
}

func (r *workEntryRepository) ListByPeriod(ctx context.Context, payPeriodID string, employeeID *string) ([]workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT we.id, we.employee_id, we.pay_period_id, we.work_date, we.hours_worked,
			   we.leads_processed, we.spifs, we.notes, we.created_at, we.updated_at,
			   e.first_name || ' ' || e.last_name
		FROM work_entries we
		JOIN employees e ON e.id = we.employee_id
		WHERE we.pay_period_id = $1
	`
	args := []interface{}{payPeriodID}
	if employeeID != nil {
		query += " AND we.employee_id = $2"
		args = append(args, *employeeID)
	}
	query += " ORDER BY we.work_date, e.last_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}
	defer rows.Close()

	var entries []workentry.WorkEntry
	for rows.Next() {
		var e workentry.WorkEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.PayPeriodID, &e.WorkDate, &e.HoursWorked,
			&e.LeadsProcessed, &e.Spifs, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
			&e.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *workEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workentry.ErrWorkEntryNotFound
	}

	return nil
}

func (r *workEntryRepository) SummarizeByPeriod(ctx context.Context, payPeriodID string) ([]workentry.WorkSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id,
			   COALESCE(SUM(hours_worked), 0),
			   COALESCE(SUM(leads_processed), 0),
			   COALESCE(SUM(spifs), 0)
		FROM work_entries
		WHERE pay_period_id = $1
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, payPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize work entries: %w", err)
	}
	defer rows.Close()

	var summaries []workentry.WorkSummary
	for rows.Next() {
		var s workentry.WorkSummary
		if err := rows.Scan(&s.EmployeeID, &s.Hours, &s.Leads, &s.Spifs); err != nil {
			return nil, fmt.Errorf("failed to scan work summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
