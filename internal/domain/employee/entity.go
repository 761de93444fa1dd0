package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// Employee - a contractor placed with a client. SalaryCompensation, despite
// the name, is a per-employee hourly rate override and takes priority over
// the role base rate when paying the employee.
type Employee struct {
	ID                 string
	FirstName          string
	LastName           string
	Email              string
	EmploymentType     string
	StartDate          time.Time
	EndDate            *time.Time
	SalaryCompensation *decimal.Decimal
	PayFrequency       string
	Status             Status
	ClientID           *string
	RoleID             *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	RoleName       *string
	RoleHourlyRate *decimal.Decimal
	ClientName     *string
}

// FullName is used for invoice line descriptions and payroll exports.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// HasConfiguredRate reports whether any rate in the payroll priority chain
// would resolve to a non-zero value for this employee.
func (e Employee) HasConfiguredRate() bool {
	if e.SalaryCompensation != nil && e.SalaryCompensation.IsPositive() {
		return true
	}
	return e.RoleHourlyRate != nil && e.RoleHourlyRate.IsPositive()
}

// ComplianceDocument - a tax/compliance document on file for an employee
// (W-8BEN etc.). Only the expiry date participates in business rules, feeding
// the dashboard expiring-documents alert.
type ComplianceDocument struct {
	ID           string
	EmployeeID   string
	DocumentType string
	ExpiresOn    *time.Time
	Notes        *string
	CreatedAt    time.Time

	// Joined fields
	EmployeeName *string
}
