package period

import (
	"context"
	"time"
)

type PeriodRepository interface {
	Create(ctx context.Context, p PayPeriod) (PayPeriod, error)
	GetByID(ctx context.Context, id string) (PayPeriod, error)
	List(ctx context.Context, status *string) ([]PayPeriod, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// CountOverlapping counts periods of the given type in state open or
	// closed whose [period_start, period_end] range overlaps [start, end].
	CountOverlapping(ctx context.Context, periodType string, start, end time.Time) (int64, error)
}
