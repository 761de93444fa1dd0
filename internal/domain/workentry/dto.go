package workentry

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type SetWorkEntryRequest struct {
	EmployeeID     string           `json:"employee_id"`
	PayPeriodID    string           `json:"pay_period_id"`
	WorkDate       string           `json:"work_date"`
	HoursWorked    *decimal.Decimal `json:"hours_worked,omitempty"`
	LeadsProcessed *int             `json:"leads_processed,omitempty"`
	Spifs          *decimal.Decimal `json:"spifs,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *SetWorkEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.PayPeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_id",
			Message: "pay_period_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if r.HoursWorked != nil {
		if r.HoursWorked.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "hours_worked",
				Message: "hours_worked must not be negative",
			})
		}
		if r.HoursWorked.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{
				Field:   "hours_worked",
				Message: "hours_worked must not exceed 24",
			})
		}
	}
	if r.LeadsProcessed != nil && *r.LeadsProcessed < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leads_processed",
			Message: "leads_processed must not be negative",
		})
	}
	if r.Spifs != nil && r.Spifs.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "spifs",
			Message: "spifs must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkEntryResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	PayPeriodID    string          `json:"pay_period_id"`
	WorkDate       string          `json:"work_date"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	LeadsProcessed int             `json:"leads_processed"`
	Spifs          decimal.Decimal `json:"spifs"`
	Notes          *string         `json:"notes,omitempty"`
}
