package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
)

// Status enum
type Status string

const (
	StatusDraft Status = "draft"
	StatusSent  Status = "sent"
	StatusPaid  Status = "paid"
)

// Transitions - draft → sent → paid, paid terminal.
var Transitions = statemachine.Table{
	string(StatusDraft): {string(StatusSent)},
	string(StatusSent):  {string(StatusPaid)},
}

// ClientInvoice - the computed bill owed by one client for one pay period.
// At most one per (client_id, pay_period_id).
type ClientInvoice struct {
	ID            string
	ClientID      string
	PayPeriodID   string
	InvoiceNumber string
	InvoiceDate   time.Time
	TotalAmount   decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ClientName  *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

// InvoiceLineItem - one employee's billable hours within an invoice.
type InvoiceLineItem struct {
	ID          string
	InvoiceID   string
	EmployeeID  string
	Description string
	Hours       decimal.Decimal
	HourlyRate  decimal.Decimal
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// FormatInvoiceNumber renders the INV-{year}-{seq} scheme with the sequence
// zero-padded to four digits.
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}
