package role

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role - a job role with an optional base hourly rate. The base rate is the
// last stop in the rate priority chain for both payroll and invoicing.
type Role struct {
	ID          string
	Name        string
	HourlyRate  *decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
