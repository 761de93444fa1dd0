package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type GenerateRunRequest struct {
	PayPeriodID string `json:"pay_period_id"`
}

func (r *GenerateRunRequest) Validate() error {
	var errs validator.ValidationErrors

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

type TransitionRunRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *TransitionRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "payroll run id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusDraft), string(StatusProcessed), string(StatusSent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, processed, sent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RunResponse struct {
	ID            string          `json:"id"`
	PayPeriodID   string          `json:"pay_period_id"`
	PeriodStart   *string         `json:"period_start,omitempty"`
	PeriodEnd     *string         `json:"period_end,omitempty"`
	RunDate       string          `json:"run_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	EmployeeCount int             `json:"employee_count"`
	Status        string          `json:"status"`
	Entries       []EntryResponse `json:"entries,omitempty"`
}

type EntryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	BaseHours    decimal.Decimal `json:"base_hours"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	BasePay      decimal.Decimal `json:"base_pay"`
	LeadsBonus   decimal.Decimal `json:"leads_bonus"`
	SpifsBonus   decimal.Decimal `json:"spifs_bonus"`
	TotalGross   decimal.Decimal `json:"total_gross"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
}
