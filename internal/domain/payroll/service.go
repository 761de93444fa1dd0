package payroll

import "context"

type PayrollService interface {
	// GenerateRun computes and persists the single payroll run for a closed
	// pay period. The run lands in draft with one entry per payable
	// employee.
	GenerateRun(ctx context.Context, req GenerateRunRequest) (RunResponse, error)
	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRuns(ctx context.Context, status *string) ([]RunResponse, error)
	// TransitionRun moves a run through draft → processed → sent. Reaching
	// sent also moves the owning pay period to processed, in the same
	// transaction.
	TransitionRun(ctx context.Context, req TransitionRunRequest) (RunResponse, error)
}
