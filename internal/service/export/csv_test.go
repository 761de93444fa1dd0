package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func sp(s string) *string { return &s }

func TestRenderPayrollCSV(t *testing.T) {
	entries := []payroll.PayrollEntry{
		{
			EmployeeEmail:     sp("dana@example.com"),
			EmployeeFirstName: sp("Dana"),
			EmployeeLastName:  sp("Reyes"),
			NetPay:            d("605"),
		},
	}

	got, err := RenderPayrollCSV(entries, "2026-03-01 to 2026-03-14")
	require.NoError(t, err)

	want := "Recipient Email,Recipient First Name,Recipient Last Name,Amount,Currency,Purpose of Payment,Note\n" +
		"dana@example.com,Dana,Reyes,605.00,USD,Contractor Payment,2026-03-01 to 2026-03-14\n"
	assert.Equal(t, want, string(got))
}

func TestRenderPayrollCSV_QuotesSpecialCharacters(t *testing.T) {
	entries := []payroll.PayrollEntry{
		{
			EmployeeEmail:     sp("lee@example.com"),
			EmployeeFirstName: sp("Lee"),
			EmployeeLastName:  sp(`Ortiz, Jr. "El"`),
			NetPay:            d("100"),
		},
	}

	got, err := RenderPayrollCSV(entries, "note")
	require.NoError(t, err)

	assert.Contains(t, string(got), `"Ortiz, Jr. ""El"""`)
}

func TestRenderPayrollCSV_Deterministic(t *testing.T) {
	entries := []payroll.PayrollEntry{
		{EmployeeEmail: sp("a@example.com"), EmployeeFirstName: sp("A"), EmployeeLastName: sp("B"), NetPay: d("1.5")},
	}

	first, err := RenderPayrollCSV(entries, "note")
	require.NoError(t, err)
	second, err := RenderPayrollCSV(entries, "note")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderInvoiceCSV(t *testing.T) {
	invoiceDate, _ := time.Parse("2006-01-02", "2026-03-15")
	inv := invoice.ClientInvoice{
		InvoiceNumber: "INV-2026-0007",
		InvoiceDate:   invoiceDate,
		ClientName:    sp("Acme Corp"),
	}
	lines := []invoice.InvoiceLineItem{
		{
			Description: "Dana Reyes - Account Manager",
			Hours:       d("12"),
			HourlyRate:  d("35"),
			Amount:      d("420"),
		},
	}

	got, err := RenderInvoiceCSV(inv, lines)
	require.NoError(t, err)

	want := "Invoice No,Customer,Invoice Date,Due Date,Item,Description,Quantity,Rate,Amount\n" +
		"INV-2026-0007,Acme Corp,2026-03-15,2026-04-14,Contractor Services,Dana Reyes - Account Manager,12.00,35.00,420.00\n"
	assert.Equal(t, want, string(got))
}

func TestRenderInvoiceCSV_OneRowPerLineItem(t *testing.T) {
	invoiceDate, _ := time.Parse("2006-01-02", "2026-03-15")
	inv := invoice.ClientInvoice{
		InvoiceNumber: "INV-2026-0008",
		InvoiceDate:   invoiceDate,
		ClientName:    sp("Acme Corp"),
	}
	lines := []invoice.InvoiceLineItem{
		{Description: "Dana Reyes - Account Manager", Hours: d("12"), HourlyRate: d("35"), Amount: d("420")},
		{Description: "Lee Ortiz - Dispatcher", Hours: d("8.5"), HourlyRate: d("22"), Amount: d("187")},
	}

	got, err := RenderInvoiceCSV(inv, lines)
	require.NoError(t, err)

	assert.Equal(t, 3, len(splitLines(string(got))))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
