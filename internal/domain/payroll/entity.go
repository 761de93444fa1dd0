package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
)

// Status enum
type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusSent      Status = "sent"
)

// Transitions - linear, terminal at sent. Reaching sent also drives the
// owning pay period to processed (in the same transaction).
var Transitions = statemachine.Table{
	string(StatusDraft):     {string(StatusProcessed)},
	string(StatusProcessed): {string(StatusSent)},
}

// PayrollRun - the computed set of payments owed for one pay period.
// At most one run may exist per pay period; entries are append-only.
type PayrollRun struct {
	ID            string
	PayPeriodID   string
	RunDate       time.Time
	TotalAmount   decimal.Decimal
	EmployeeCount int
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

// PayrollEntry - one employee's computed pay within a run. Immutable once
// written. LeadsBonus persists as zero: lead counts are tracked for reporting
// only, bonus pay flows through spifs.
type PayrollEntry struct {
	ID           string
	PayrollRunID string
	EmployeeID   string
	BaseHours    decimal.Decimal
	HourlyRate   decimal.Decimal
	BasePay      decimal.Decimal
	LeadsBonus   decimal.Decimal
	SpifsBonus   decimal.Decimal
	TotalGross   decimal.Decimal
	Deductions   decimal.Decimal
	NetPay       decimal.Decimal
	CreatedAt    time.Time

	// Joined fields
	EmployeeFirstName *string
	EmployeeLastName  *string
	EmployeeEmail     *string
}
