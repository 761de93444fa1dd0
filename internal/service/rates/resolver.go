// Package rates resolves the hourly rate to apply for an employee over a pay
// period. Payroll and invoicing share the mechanism but walk different
// priority chains: paying an employee honors their personal override, billing
// a client never does.
package rates

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
)

// Input carries everything a resolution needs, pre-fetched by the caller.
// Pricing holds the client's pricing rows overlapping the period; rows for
// other roles are filtered out here.
type Input struct {
	Employee    employee.Employee
	Pricing     []pricing.ClientPricing
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Strategy attempts one step of a priority chain. ok=false means fall
// through to the next step.
type Strategy func(in Input) (rate decimal.Decimal, ok bool)

func employeeOverride(in Input) (decimal.Decimal, bool) {
	if in.Employee.SalaryCompensation != nil && in.Employee.SalaryCompensation.IsPositive() {
		return *in.Employee.SalaryCompensation, true
	}
	return decimal.Zero, false
}

// clientPricing picks the row for the employee's role with the most recent
// effective_from among those overlapping the period.
func clientPricing(in Input) (decimal.Decimal, bool) {
	if in.Employee.RoleID == nil {
		return decimal.Zero, false
	}

	var best *pricing.ClientPricing
	for i := range in.Pricing {
		p := in.Pricing[i]
		if p.RoleID != *in.Employee.RoleID {
			continue
		}
		if !p.OverlapsPeriod(in.PeriodStart, in.PeriodEnd) {
			continue
		}
		if best == nil || p.EffectiveFrom.After(best.EffectiveFrom) {
			best = &in.Pricing[i]
		}
	}

	if best == nil {
		return decimal.Zero, false
	}
	return best.HourlyRate, true
}

func roleBaseRate(in Input) (decimal.Decimal, bool) {
	if in.Employee.RoleHourlyRate != nil && in.Employee.RoleHourlyRate.IsPositive() {
		return *in.Employee.RoleHourlyRate, true
	}
	return decimal.Zero, false
}

var (
	payChain  = []Strategy{employeeOverride, roleBaseRate}
	billChain = []Strategy{clientPricing, roleBaseRate}
)

func resolve(chain []Strategy, in Input) decimal.Decimal {
	for _, s := range chain {
		if rate, ok := s(in); ok {
			return rate
		}
	}
	return decimal.Zero
}

// PayRate resolves the rate used to pay the employee: personal override,
// then role base rate, then zero. Client pricing is what the client is
// charged, never what the employee is paid.
func PayRate(in Input) decimal.Decimal {
	return resolve(payChain, in)
}

// BillRate resolves the rate used to bill the client:
// client pricing, then role base rate, then zero. Personal overrides are a
// pay-side arrangement and never leak into what the client is charged.
func BillRate(in Input) decimal.Decimal {
	return resolve(billChain, in)
}
