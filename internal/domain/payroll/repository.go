package payroll

import "context"

type PayrollRepository interface {
	// CreateRunWithEntries inserts the run header and all entries. The caller
	// wraps it in a transaction so run and entries land together or not at
	// all. A unique violation on pay_period_id surfaces as ErrRunAlreadyExists.
	CreateRunWithEntries(ctx context.Context, run PayrollRun, entries []PayrollEntry) (PayrollRun, error)
	GetRunByID(ctx context.Context, id string) (PayrollRun, error)
	GetRunByPeriodID(ctx context.Context, payPeriodID string) (PayrollRun, error)
	ListRuns(ctx context.Context, status *string) ([]PayrollRun, error)
	GetEntriesByRunID(ctx context.Context, runID string) ([]PayrollEntry, error)
	UpdateRunStatus(ctx context.Context, id string, status Status) error
}
