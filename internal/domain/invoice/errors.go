package invoice

import (
	"errors"
	"fmt"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this client and pay period")
	ErrNoBillableEntity     = errors.New("client has no active employees to bill")
	ErrNoBillableHours      = errors.New("no billable hours logged for this client in the pay period")
	ErrInvoiceHasNoLines    = errors.New("invoice has no line items to export")
)

// InvoiceExistsError reports a duplicate generation attempt, naming the
// invoice that already covers the client and period.
type InvoiceExistsError struct {
	ClientID      string
	PayPeriodID   string
	InvoiceID     string
	InvoiceNumber string
	Status        Status
}

func (e *InvoiceExistsError) Error() string {
	return fmt.Sprintf("invoice %s (%s, status %s) already exists for client %s and pay period %s",
		e.InvoiceID, e.InvoiceNumber, e.Status, e.ClientID, e.PayPeriodID)
}

// Is keeps errors.Is(err, ErrInvoiceAlreadyExists) matching the structured form.
func (e *InvoiceExistsError) Is(target error) bool {
	return target == ErrInvoiceAlreadyExists
}
