package period

import "context"

type PeriodService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context, status *string) ([]PeriodResponse, error)
	// TransitionPeriod moves a period through open, closed and processed.
	// Reopening a closed period is allowed only while no payroll run exists
	// for it.
	TransitionPeriod(ctx context.Context, req TransitionPeriodRequest) (PeriodResponse, error)
}
