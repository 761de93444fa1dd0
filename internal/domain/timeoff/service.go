package timeoff

import "context"

type TimeOffService interface {
	// RequestTimeOff files a pending leave request. When days_count is
	// omitted it defaults to the weekday count of the requested range.
	RequestTimeOff(ctx context.Context, req RequestTimeOffRequest) (TimeOffResponse, error)
	GetTimeOff(ctx context.Context, id string) (TimeOffResponse, error)
	ListTimeOff(ctx context.Context, filter TimeOffFilter) ([]TimeOffResponse, error)
	// DecideTimeOff approves or denies a pending request. Decisions are
	// final.
	DecideTimeOff(ctx context.Context, req DecideTimeOffRequest, decidedBy string) (TimeOffResponse, error)
}
