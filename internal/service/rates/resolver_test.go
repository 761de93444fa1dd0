package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func sp(s string) *string { return &s }

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestPayRate_EmployeeOverrideWinsOverEverything(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			SalaryCompensation: dp("30.00"),
			RoleID:             sp("role-1"),
			RoleHourlyRate:     dp("20.00"),
		},
		Pricing: []pricing.ClientPricing{
			{RoleID: "role-1", HourlyRate: d("25.00"), EffectiveFrom: date("2026-01-01")},
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("30.00").Equal(PayRate(in)))
}

func TestPayRate_IgnoresClientPricing(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			RoleID:         sp("role-1"),
			RoleHourlyRate: dp("20.00"),
		},
		Pricing: []pricing.ClientPricing{
			{RoleID: "role-1", HourlyRate: d("25.00"), EffectiveFrom: date("2026-01-01")},
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	// Client pricing is billing-side only.
	assert.True(t, d("20.00").Equal(PayRate(in)))
}

func TestPayRate_FallsThroughToRoleBaseRate(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			RoleID:         sp("role-1"),
			RoleHourlyRate: dp("20.00"),
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("20.00").Equal(PayRate(in)))
}

func TestPayRate_NoRateConfiguredResolvesZero(t *testing.T) {
	in := Input{
		Employee:    employee.Employee{RoleID: sp("role-1")},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, PayRate(in).IsZero())
}

func TestPayRate_ZeroOverrideDoesNotShadowChain(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			SalaryCompensation: dp("0"),
			RoleID:             sp("role-1"),
			RoleHourlyRate:     dp("18.50"),
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("18.50").Equal(PayRate(in)))
}

func TestClientPricing_IgnoresOtherRolesAndNonOverlapping(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			RoleID:         sp("role-1"),
			RoleHourlyRate: dp("20.00"),
		},
		Pricing: []pricing.ClientPricing{
			{RoleID: "role-2", HourlyRate: d("40.00"), EffectiveFrom: date("2026-01-01")},
			{RoleID: "role-1", HourlyRate: d("22.00"), EffectiveFrom: date("2025-01-01"), EffectiveTo: datePtr("2025-12-31")},
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	// Both rows disqualified, so the role base rate applies.
	assert.True(t, d("20.00").Equal(BillRate(in)))
}

func TestClientPricing_MostRecentEffectiveFromWins(t *testing.T) {
	in := Input{
		Employee: employee.Employee{RoleID: sp("role-1")},
		Pricing: []pricing.ClientPricing{
			{RoleID: "role-1", HourlyRate: d("24.00"), EffectiveFrom: date("2025-06-01")},
			{RoleID: "role-1", HourlyRate: d("26.00"), EffectiveFrom: date("2026-02-01")},
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("26.00").Equal(BillRate(in)))
}

func TestClientPricing_PartialOverlapQualifies(t *testing.T) {
	in := Input{
		Employee: employee.Employee{RoleID: sp("role-1")},
		Pricing: []pricing.ClientPricing{
			// Ends mid-period; any overlap qualifies.
			{RoleID: "role-1", HourlyRate: d("27.00"), EffectiveFrom: date("2026-01-01"), EffectiveTo: datePtr("2026-03-07")},
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("27.00").Equal(BillRate(in)))
}

func TestBillRate_IgnoresEmployeeOverride(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			SalaryCompensation: dp("30.00"),
			RoleID:             sp("role-1"),
			RoleHourlyRate:     dp("20.00"),
		},
		Pricing: []pricing.ClientPricing{
			{RoleID: "role-1", HourlyRate: d("25.00"), EffectiveFrom: date("2026-01-01")},
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("25.00").Equal(BillRate(in)))
}

func TestBillRate_FallsBackToRoleRate(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			RoleID:         sp("role-1"),
			RoleHourlyRate: dp("20.00"),
		},
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-15"),
	}

	assert.True(t, d("20.00").Equal(BillRate(in)))
}
