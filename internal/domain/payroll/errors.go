package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrRunNotFound      = errors.New("payroll run not found")
	ErrRunAlreadyExists = errors.New("payroll run already exists for this pay period")
	ErrRunNotExportable = errors.New("payroll run must be processed or sent to export")
)

// RunExistsError reports a duplicate generation attempt, naming the run that
// already covers the period.
type RunExistsError struct {
	PayPeriodID string
	RunID       string
	Status      Status
}

func (e *RunExistsError) Error() string {
	return fmt.Sprintf("payroll run %s (status %s) already exists for pay period %s",
		e.RunID, e.Status, e.PayPeriodID)
}

// Is keeps errors.Is(err, ErrRunAlreadyExists) matching the structured form.
func (e *RunExistsError) Is(target error) bool {
	return target == ErrRunAlreadyExists
}
