package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/money"
	"github.com/staffhive/staffhive-backend-go/internal/service/rates"
)

// buildEntries computes the payroll entries for a period from already-loaded
// state. Pure: every storage read happens before, every write after.
//
// Employees with no logged work and no configured rate are skipped outright;
// entries that net to zero with zero hours are dropped as noise. An employee
// with logged hours but an unresolvable rate keeps a zero-pay line so the
// missing configuration is visible in the run.
func buildEntries(
	employees []employee.Employee,
	summaries []workentry.WorkSummary,
	p period.PayPeriod,
) ([]payroll.PayrollEntry, decimal.Decimal) {
	byEmployee := make(map[string]workentry.WorkSummary, len(summaries))
	for _, s := range summaries {
		byEmployee[s.EmployeeID] = s
	}

	var entries []payroll.PayrollEntry
	total := decimal.Zero

	for _, emp := range employees {
		work := byEmployee[emp.ID]
		hasWork := work.Hours.IsPositive() || work.Spifs.IsPositive() || work.Leads > 0

		if !hasWork && !emp.HasConfiguredRate() {
			continue
		}

		rate := rates.PayRate(rates.Input{
			Employee:    emp,
			PeriodStart: p.PeriodStart,
			PeriodEnd:   p.PeriodEnd,
		})

		basePay := money.Round2(work.Hours.Mul(rate))
		// Lead counts are tracked for reporting only; bonus pay flows
		// through spifs.
		leadsBonus := decimal.Zero
		spifsBonus := money.Round2(work.Spifs)
		totalGross := money.Round2(basePay.Add(leadsBonus).Add(spifsBonus))
		deductions := decimal.Zero
		netPay := money.Round2(totalGross.Sub(deductions))

		if netPay.IsZero() && work.Hours.IsZero() {
			continue
		}

		entries = append(entries, payroll.PayrollEntry{
			EmployeeID: emp.ID,
			BaseHours:  work.Hours,
			HourlyRate: rate,
			BasePay:    basePay,
			LeadsBonus: leadsBonus,
			SpifsBonus: spifsBonus,
			TotalGross: totalGross,
			Deductions: deductions,
			NetPay:     netPay,
		})
		total = total.Add(netPay)
	}

	return entries, money.Round2(total)
}
