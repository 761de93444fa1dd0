package workentry

import "errors"

var (
	ErrWorkEntryNotFound = errors.New("work entry not found")
	ErrDateOutsidePeriod = errors.New("work_date is outside the pay period bounds")
)
