package timeoff

import "context"

type TimeOffFilter struct {
	EmployeeID *string
	Status     *string
}

type TimeOffRepository interface {
	Create(ctx context.Context, t TimeOff) (TimeOff, error)
	GetByID(ctx context.Context, id string) (TimeOff, error)
	List(ctx context.Context, filter TimeOffFilter) ([]TimeOff, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) error
}
