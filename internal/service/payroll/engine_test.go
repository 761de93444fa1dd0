package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
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

func TestBuildEntries_SingleEmployeeWithRoleRate(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive, RoleHourlyRate: dp("20")},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("30"), Spifs: d("5")},
	}

	entries, total := buildEntries(employees, summaries, marchPeriod())

	require.Len(t, entries, 1)
	e := entries[0]
	assert.True(t, d("30").Equal(e.BaseHours))
	assert.True(t, d("20").Equal(e.HourlyRate))
	assert.True(t, d("600.00").Equal(e.BasePay))
	assert.True(t, e.LeadsBonus.IsZero())
	assert.True(t, d("5.00").Equal(e.SpifsBonus))
	assert.True(t, d("605.00").Equal(e.TotalGross))
	assert.True(t, e.Deductions.IsZero())
	assert.True(t, d("605.00").Equal(e.NetPay))
	assert.True(t, d("605.00").Equal(total))
}

func TestBuildEntries_OverrideBeatsRoleRate(t *testing.T) {
	employees := []employee.Employee{
		{
			ID:                 "emp-1",
			Status:             employee.StatusActive,
			SalaryCompensation: dp("30"),
			RoleHourlyRate:     dp("20"),
		},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("10")},
	}

	entries, total := buildEntries(employees, summaries, marchPeriod())

	require.Len(t, entries, 1)
	assert.True(t, d("30").Equal(entries[0].HourlyRate))
	assert.True(t, d("300.00").Equal(entries[0].BasePay))
	assert.True(t, d("300.00").Equal(total))
}

func TestBuildEntries_RoundsHalfAwayFromZero(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive, RoleHourlyRate: dp("25.00")},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("33.333")},
	}

	entries, _ := buildEntries(employees, summaries, marchPeriod())

	require.Len(t, entries, 1)
	// 33.333 * 25.00 = 833.325 rounds up to 833.33.
	assert.Equal(t, "833.33", entries[0].BasePay.StringFixed(2))
}

func TestBuildEntries_SkipsNoWorkNoRate(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive},
	}

	entries, total := buildEntries(employees, nil, marchPeriod())

	assert.Empty(t, entries)
	assert.True(t, total.IsZero())
}

func TestBuildEntries_RatedEmployeeWithoutWorkDropped(t *testing.T) {
	// Has a rate, so not skipped up front, but nets to zero with zero
	// hours and is dropped as a noise row.
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive, RoleHourlyRate: dp("20")},
	}

	entries, _ := buildEntries(employees, nil, marchPeriod())

	assert.Empty(t, entries)
}

func TestBuildEntries_SpifsOnlyEntryKept(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive, RoleHourlyRate: dp("20")},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: decimal.Zero, Spifs: d("50")},
	}

	entries, total := buildEntries(employees, summaries, marchPeriod())

	require.Len(t, entries, 1)
	assert.True(t, entries[0].BasePay.IsZero())
	assert.True(t, d("50.00").Equal(entries[0].NetPay))
	assert.True(t, d("50.00").Equal(total))
}

func TestBuildEntries_HoursWithoutRateKeptAsZeroLine(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("8")},
	}

	entries, total := buildEntries(employees, summaries, marchPeriod())

	require.Len(t, entries, 1)
	assert.True(t, entries[0].HourlyRate.IsZero())
	assert.True(t, entries[0].NetPay.IsZero())
	assert.True(t, d("8").Equal(entries[0].BaseHours))
	assert.True(t, total.IsZero())
}

func TestBuildEntries_TotalSumsAcrossEmployees(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", Status: employee.StatusActive, RoleHourlyRate: dp("20")},
		{ID: "emp-2", Status: employee.StatusActive, SalaryCompensation: dp("35")},
		{ID: "emp-3", Status: employee.StatusActive},
	}
	summaries := []workentry.WorkSummary{
		{EmployeeID: "emp-1", Hours: d("30"), Spifs: d("5")},
		{EmployeeID: "emp-2", Hours: d("10")},
	}

	entries, total := buildEntries(employees, summaries, marchPeriod())

	require.Len(t, entries, 2)
	assert.True(t, d("955.00").Equal(total))
}
