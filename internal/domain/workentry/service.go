package workentry

import "context"

type TimesheetService interface {
	// SetWorkEntry inserts or replaces the entry for
	// (employee_id, pay_period_id, work_date). The owning period must be
	// open and work_date must fall within its bounds.
	SetWorkEntry(ctx context.Context, req SetWorkEntryRequest) (WorkEntryResponse, error)
	GetWorkEntry(ctx context.Context, id string) (WorkEntryResponse, error)
	ListByPeriod(ctx context.Context, payPeriodID string, employeeID *string) ([]WorkEntryResponse, error)
	// DeleteWorkEntry removes an entry. Like SetWorkEntry it requires the
	// owning period to be open.
	DeleteWorkEntry(ctx context.Context, id string) error
}
