package timeoff

import "github.com/staffhive/staffhive-backend-go/internal/pkg/validator"

type RequestTimeOffRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	DaysCount  *int    `json:"days_count,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *RequestTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.LeaveType, []string{string(LeaveTypePTO), string(LeaveTypeSick), string(LeaveTypeUnpaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of pto, sick, unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if r.DaysCount != nil && *r.DaysCount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_count",
			Message: "days_count must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideTimeOffRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *DecideTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "time off id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusDenied)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or denied",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeOffResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DaysCount    int     `json:"days_count"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
}
