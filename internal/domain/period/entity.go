package period

import (
	"time"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
)

// Status enum
type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusProcessed Status = "processed"
)

// Transitions - work entries are mutable only while open; payroll generation
// requires closed; processed is terminal. Closed may revert to open.
var Transitions = statemachine.Table{
	string(StatusOpen):   {string(StatusClosed)},
	string(StatusClosed): {string(StatusOpen), string(StatusProcessed)},
}

// PayPeriod - a bounded calendar window over which work is logged and later
// paid and billed.
type PayPeriod struct {
	ID          string
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodType  string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label renders the period bounds for export notes.
func (p PayPeriod) Label() string {
	return p.PeriodStart.Format("2006-01-02") + " to " + p.PeriodEnd.Format("2006-01-02")
}

// ContainsDate reports whether d falls within [PeriodStart, PeriodEnd].
func (p PayPeriod) ContainsDate(d time.Time) bool {
	return !d.Before(p.PeriodStart) && !d.After(p.PeriodEnd)
}
