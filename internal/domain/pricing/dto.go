package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type CreatePricingRequest struct {
	ClientID      string          `json:"-"`
	RoleID        string          `json:"role_id"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
}

func (r *CreatePricingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	from, fromOK := validator.IsValidDate(r.EffectiveFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be a valid date (YYYY-MM-DD)",
		})
	}
	if r.EffectiveTo != nil {
		to, toOK := validator.IsValidDate(*r.EffectiveTo)
		if !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be a valid date (YYYY-MM-DD)",
			})
		} else if fromOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must not be before effective_from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PricingResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	RoleID        string          `json:"role_id"`
	RoleName      *string         `json:"role_name,omitempty"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
}
