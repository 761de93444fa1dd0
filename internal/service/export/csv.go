package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/money"
)

var payrollHeader = []string{
	"Recipient Email", "Recipient First Name", "Recipient Last Name",
	"Amount", "Currency", "Purpose of Payment", "Note",
}

var invoiceHeader = []string{
	"Invoice No", "Customer", "Invoice Date", "Due Date",
	"Item", "Description", "Quantity", "Rate", "Amount",
}

const (
	payrollCurrency = "USD"
	payrollPurpose  = "Contractor Payment"
	invoiceItem     = "Contractor Services"
	dueDateDays     = 30
)

// RenderPayrollCSV renders the payment-provider upload for a run. Pure
// function of the entries; rendering the same run twice yields identical
// bytes.
func RenderPayrollCSV(entries []payroll.PayrollEntry, periodLabel string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(payrollHeader); err != nil {
		return nil, fmt.Errorf("failed to write payroll csv header: %w", err)
	}

	for _, e := range entries {
		var email, first, last string
		if e.EmployeeEmail != nil {
			email = *e.EmployeeEmail
		}
		if e.EmployeeFirstName != nil {
			first = *e.EmployeeFirstName
		}
		if e.EmployeeLastName != nil {
			last = *e.EmployeeLastName
		}

		row := []string{
			email, first, last,
			money.Format(e.NetPay),
			payrollCurrency,
			payrollPurpose,
			periodLabel,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write payroll csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush payroll csv: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderInvoiceCSV renders the accounting-import rows for an invoice, one per
// line item. Due date is invoice date plus thirty days.
func RenderInvoiceCSV(inv invoice.ClientInvoice, lines []invoice.InvoiceLineItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(invoiceHeader); err != nil {
		return nil, fmt.Errorf("failed to write invoice csv header: %w", err)
	}

	customer := ""
	if inv.ClientName != nil {
		customer = *inv.ClientName
	}
	invoiceDate := inv.InvoiceDate.Format("2006-01-02")
	dueDate := inv.InvoiceDate.AddDate(0, 0, dueDateDays).Format("2006-01-02")

	for _, l := range lines {
		row := []string{
			inv.InvoiceNumber,
			customer,
			invoiceDate,
			dueDate,
			invoiceItem,
			l.Description,
			l.Hours.StringFixed(2),
			money.Format(l.HourlyRate),
			money.Format(l.Amount),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write invoice csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush invoice csv: %w", err)
	}

	return buf.Bytes(), nil
}
