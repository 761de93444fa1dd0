package period

import "errors"

var (
	ErrPeriodNotFound  = errors.New("pay period not found")
	ErrPeriodOverlap   = errors.New("pay period overlaps an existing open or closed period of the same type")
	ErrPeriodNotOpen   = errors.New("pay period is not open")
	ErrPeriodNotClosed = errors.New("pay period is not closed")
	ErrPeriodHasRun    = errors.New("pay period already has a payroll run")
)
