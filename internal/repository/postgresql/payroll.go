package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) CreateRunWithEntries(ctx context.Context, run payroll.PayrollRun, entries []payroll.PayrollEntry) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	runQuery := `
		INSERT INTO payroll_runs (id, pay_period_id, run_date, total_amount, employee_count, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, pay_period_id, run_date, total_amount, employee_count, status, created_at, updated_at
	`

	var created payroll.PayrollRun
	err := q.QueryRow(ctx, runQuery,
		run.ID, run.PayPeriodID, run.RunDate, run.TotalAmount, run.EmployeeCount, run.Status,
	).Scan(
		&created.ID, &created.PayPeriodID, &created.RunDate, &created.TotalAmount,
		&created.EmployeeCount, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		// Unique index on pay_period_id is the authoritative one-run-per-period
		// guard; the service's pre-check only produces a friendlier error.
		if strings.Contains(err.Error(), "uq_payroll_runs_pay_period") {
			return payroll.PayrollRun{}, payroll.ErrRunAlreadyExists
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	entryQuery := `
		INSERT INTO payroll_entries (
			id, payroll_run_id, employee_id, base_hours, hourly_rate, base_pay,
			leads_bonus, spifs_bonus, total_gross, deductions, net_pay
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, e := range entries {
		if _, err := q.Exec(ctx, entryQuery,
			created.ID, e.EmployeeID, e.BaseHours, e.HourlyRate, e.BasePay,
			e.LeadsBonus, e.SpifsBonus, e.TotalGross, e.Deductions, e.NetPay,
		); err != nil {
			return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll entry for employee %s: %w", e.EmployeeID, err)
		}
	}

	return created, nil
}

const runSelect = `
	SELECT pr.id, pr.pay_period_id, pr.run_date, pr.total_amount, pr.employee_count,
		   pr.status, pr.created_at, pr.updated_at, pp.period_start, pp.period_end
	FROM payroll_runs pr
	JOIN pay_periods pp ON pp.id = pr.pay_period_id
`

func (r *payrollRepository) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	var run payroll.PayrollRun
	err := q.QueryRow(ctx, runSelect+` WHERE pr.id = $1`, id).Scan(
		&run.ID, &run.PayPeriodID, &run.RunDate, &run.TotalAmount, &run.EmployeeCount,
		&run.Status, &run.CreatedAt, &run.UpdatedAt, &run.PeriodStart, &run.PeriodEnd,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) GetRunByPeriodID(ctx context.Context, payPeriodID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	var run payroll.PayrollRun
	err := q.QueryRow(ctx, runSelect+` WHERE pr.pay_period_id = $1`, payPeriodID).Scan(
		&run.ID, &run.PayPeriodID, &run.RunDate, &run.TotalAmount, &run.EmployeeCount,
		&run.Status, &run.CreatedAt, &run.UpdatedAt, &run.PeriodStart, &run.PeriodEnd,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run by period: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) ListRuns(ctx context.Context, status *string) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := runSelect
	args := []interface{}{}
	if status != nil {
		query += " WHERE pr.status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY pr.run_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		var run payroll.PayrollRun
		if err := rows.Scan(
			&run.ID, &run.PayPeriodID, &run.RunDate, &run.TotalAmount, &run.EmployeeCount,
			&run.Status, &run.CreatedAt, &run.UpdatedAt, &run.PeriodStart, &run.PeriodEnd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *payrollRepository) GetEntriesByRunID(ctx context.Context, runID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pe.id, pe.payroll_run_id, pe.employee_id, pe.base_hours, pe.hourly_rate,
			   pe.base_pay, pe.leads_bonus, pe.spifs_bonus, pe.total_gross, pe.deductions,
			   pe.net_pay, pe.created_at, e.first_name, e.last_name, e.email
		FROM payroll_entries pe
		JOIN employees e ON e.id = pe.employee_id
		WHERE pe.payroll_run_id = $1
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		var e payroll.PayrollEntry
		if err := rows.Scan(
			&e.ID, &e.PayrollRunID, &e.EmployeeID, &e.BaseHours, &e.HourlyRate,
			&e.BasePay, &e.LeadsBonus, &e.SpifsBonus, &e.TotalGross, &e.Deductions,
			&e.NetPay, &e.CreatedAt, &e.EmployeeFirstName, &e.EmployeeLastName, &e.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *payrollRepository) UpdateRunStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payroll_runs SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll run status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}

	return nil
}
