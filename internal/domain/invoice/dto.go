package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type GenerateInvoiceRequest struct {
	ClientID    string `json:"client_id"`
	PayPeriodID string `json:"pay_period_id"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.PayPeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_id",
			Message: "pay_period_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransitionInvoiceRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *TransitionInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invoice id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusDraft), string(StatusSent), string(StatusPaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, sent, paid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"client_id"`
	ClientName    *string            `json:"client_name,omitempty"`
	PayPeriodID   string             `json:"pay_period_id"`
	PeriodStart   *string            `json:"period_start,omitempty"`
	PeriodEnd     *string            `json:"period_end,omitempty"`
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   string             `json:"invoice_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        string             `json:"status"`
	LineItems     []LineItemResponse `json:"line_items,omitempty"`
}

type LineItemResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Amount      decimal.Decimal `json:"amount"`
}
