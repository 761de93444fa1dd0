package period

import "github.com/staffhive/staffhive-backend-go/internal/pkg/validator"

var periodTypes = []string{"weekly", "biweekly", "monthly"}

type CreatePeriodRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PeriodType  string `json:"period_type"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be after period_start",
		})
	}
	if !validator.IsInSlice(r.PeriodType, periodTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_type",
			Message: "period_type must be one of weekly, biweekly, monthly",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransitionPeriodRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *TransitionPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "pay period id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusOpen), string(StatusClosed), string(StatusProcessed)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of open, closed, processed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PeriodResponse struct {
	ID          string `json:"id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PeriodType  string `json:"period_type"`
	Status      string `json:"status"`
}
