package workentry

import "context"

type WorkEntryRepository interface {
	// Upsert inserts or replaces the entry keyed by
	// (employee_id, pay_period_id, work_date).
	Upsert(ctx context.Context, e WorkEntry) (WorkEntry, error)
	GetByID(ctx context.Context, id string) (WorkEntry, error)
	ListByPeriod(ctx context.Context, payPeriodID string, employeeID *string) ([]WorkEntry, error)
	Delete(ctx context.Context, id string) error
	// SummarizeByPeriod aggregates hours, leads and spifs per employee over
	// the period. Employees with no entries are absent from the result.
	SummarizeByPeriod(ctx context.Context, payPeriodID string) ([]WorkSummary, error)
}
