package workentry

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkEntry - one day's logged facts for an employee in a pay period.
// Unique per (employee_id, pay_period_id, work_date); repeated submission
// upserts in place. Mutable only while the owning period is open.
type WorkEntry struct {
	ID             string
	EmployeeID     string
	PayPeriodID    string
	WorkDate       time.Time
	HoursWorked    decimal.Decimal
	LeadsProcessed int
	Spifs          decimal.Decimal
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

// WorkSummary - per-employee aggregate over one pay period. Invoicing uses
// only Hours; leads and spifs are payroll-side facts.
type WorkSummary struct {
	EmployeeID string
	Hours      decimal.Decimal
	Leads      int
	Spifs      decimal.Decimal
}
