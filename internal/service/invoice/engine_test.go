package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
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

func marchPeriod() period.PayPeriod {
	return period.PayPeriod{
		ID:          "period-1",
		PeriodStart: date("2026-03-01"),
		PeriodEnd:   date("2026-03-14"),
		Status:      period.StatusClosed,
	}
}

func TestBuildLines_ClientPricingRateApplied(t *testing.T) {
	employees := []employee.Employee{
		{
			ID:        "emp-1",
			FirstName: "Dana",
			LastName:  "Reyes",
			Status:    employee.StatusActive,
			RoleID:    sp("role-1"),
			RoleName:  sp("Account Manager"),
		},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("12")},
	}
	prices := []pricing.ClientPricing{
		{RoleID: "role-1", HourlyRate: d("35"), EffectiveFrom: date("2026-01-01")},
	}

	lines, total := buildLines(employees, summaries, prices, marchPeriod())

	require.Len(t, lines, 1)
	l := lines[0]
	assert.Equal(t, "Dana Reyes - Account Manager", l.Description)
	assert.True(t, d("12").Equal(l.Hours))
	assert.True(t, d("35").Equal(l.HourlyRate))
	assert.True(t, d("420.00").Equal(l.Amount))
	assert.True(t, d("420.00").Equal(total))
}

func TestBuildLines_FallsBackToRoleRate(t *testing.T) {
	employees := []employee.Employee{
		{
			ID:             "emp-1",
			FirstName:      "Dana",
			LastName:       "Reyes",
			Status:         employee.StatusActive,
			RoleID:         sp("role-1"),
			RoleName:       sp("Account Manager"),
			RoleHourlyRate: dp("28"),
		},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("10")},
	}
	prices := []pricing.ClientPricing{
		// Entirely before the period, so it never applies.
		{RoleID: "role-1", HourlyRate: d("35"), EffectiveFrom: date("2025-01-01"), EffectiveTo: datePtr("2025-06-30")},
	}

	lines, total := buildLines(employees, summaries, prices, marchPeriod())

	require.Len(t, lines, 1)
	assert.True(t, d("28").Equal(lines[0].HourlyRate))
	assert.True(t, d("280.00").Equal(total))
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestBuildLines_OverrideNeverBilled(t *testing.T) {
	employees := []employee.Employee{
		{
			ID:                 "emp-1",
			FirstName:          "Dana",
			LastName:           "Reyes",
			Status:             employee.StatusActive,
			SalaryCompensation: dp("90"),
			RoleID:             sp("role-1"),
			RoleHourlyRate:     dp("28"),
		},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("10")},
	}

	lines, _ := buildLines(employees, summaries, nil, marchPeriod())

	require.Len(t, lines, 1)
	assert.True(t, d("28").Equal(lines[0].HourlyRate))
}

func TestBuildLines_ZeroHourEmployeesGetNoLine(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", FirstName: "Dana", LastName: "Reyes", Status: employee.StatusActive, RoleHourlyRate: dp("28")},
		{ID: "emp-2", FirstName: "Lee", LastName: "Ortiz", Status: employee.StatusActive, RoleHourlyRate: dp("28")},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("8")},
		// emp-2 logged spifs only; spifs are never billed to clients.
		{EmployeeID: "emp-2", Hours: decimal.Zero, Spifs: d("100")},
	}

	lines, _ := buildLines(employees, summaries, nil, marchPeriod())

	require.Len(t, lines, 1)
	assert.Equal(t, "emp-1", lines[0].EmployeeID)
}

func TestBuildLines_MissingRoleRendersUnknown(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", FirstName: "Dana", LastName: "Reyes", Status: employee.StatusActive},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("5")},
	}

	lines, total := buildLines(employees, summaries, nil, marchPeriod())

	require.Len(t, lines, 1)
	assert.Equal(t, "Dana Reyes - Unknown Role", lines[0].Description)
	assert.True(t, lines[0].Amount.IsZero())
	assert.True(t, total.IsZero())
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-0001", invoice.FormatInvoiceNumber(2026, 1))
	assert.Equal(t, "INV-2026-0042", invoice.FormatInvoiceNumber(2026, 42))
	assert.Equal(t, "INV-2026-12345", invoice.FormatInvoiceNumber(2026, 12345))
}
