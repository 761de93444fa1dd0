package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/money"
	"github.com/staffhive/staffhive-backend-go/internal/service/rates"
)

const unknownRole = "Unknown Role"

// buildLines computes the invoice line items for one client's employees over
// a period from already-loaded state. Employees without billable hours get no
// line; leads and spifs are never billed.
func buildLines(
	employees []employee.Employee,
	summaries []workentry.WorkSummary,
	prices []pricing.ClientPricing,
	p period.PayPeriod,
) ([]invoice.InvoiceLineItem, decimal.Decimal) {
	byEmployee := make(map[string]workentry.WorkSummary, len(summaries))
	for _, s := range summaries {
		byEmployee[s.EmployeeID] = s
	}

	var lines []invoice.InvoiceLineItem
	total := decimal.Zero

	for _, emp := range employees {
		hours := byEmployee[emp.ID].Hours
		if !hours.IsPositive() {
			continue
		}

		rate := rates.BillRate(rates.Input{
			Employee:    emp,
			Pricing:     prices,
			PeriodStart: p.PeriodStart,
			PeriodEnd:   p.PeriodEnd,
		})
		amount := money.Round2(hours.Mul(rate))

		roleName := unknownRole
		if emp.RoleName != nil && *emp.RoleName != "" {
			roleName = *emp.RoleName
		}

		lines = append(lines, invoice.InvoiceLineItem{
			EmployeeID:  emp.ID,
			Description: emp.FullName() + " - " + roleName,
			Hours:       hours,
			HourlyRate:  rate,
			Amount:      amount,
		})
		total = total.Add(amount)
	}

	return lines, money.Round2(total)
}
