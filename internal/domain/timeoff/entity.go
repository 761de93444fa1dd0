package timeoff

import (
	"time"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
)

// LeaveType enum
type LeaveType string

const (
	LeaveTypePTO    LeaveType = "pto"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Transitions - decisions only from pending; approved and denied are terminal.
var Transitions = statemachine.Table{
	string(StatusPending): {string(StatusApproved), string(StatusDenied)},
}

// TimeOff - a leave request. DaysCount defaults to the weekday count of the
// requested range when the caller does not supply one.
type TimeOff struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	DaysCount  int
	Reason     *string
	Status     Status
	DecidedAt  *time.Time
	DecidedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// WeekdayCount counts Mon-Fri days in [start, end] inclusive.
func WeekdayCount(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}
