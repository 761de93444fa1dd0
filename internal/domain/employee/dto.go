package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

var employmentTypes = []string{"contractor", "full_time", "part_time"}
var payFrequencies = []string{"weekly", "biweekly", "monthly"}

type CreateEmployeeRequest struct {
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	EmploymentType     string           `json:"employment_type"`
	StartDate          string           `json:"start_date"`
	EndDate            *string          `json:"end_date,omitempty"`
	SalaryCompensation *decimal.Decimal `json:"salary_compensation,omitempty"`
	PayFrequency       string           `json:"pay_frequency"`
	ClientID           *string          `json:"client_id,omitempty"`
	RoleID             *string          `json:"role_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}
	if !validator.IsInSlice(r.EmploymentType, employmentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of contractor, full_time, part_time",
		})
	}
	if !validator.IsInSlice(r.PayFrequency, payFrequencies) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_frequency",
			Message: "pay_frequency must be one of weekly, biweekly, monthly",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}
	if r.SalaryCompensation != nil && r.SalaryCompensation.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_compensation",
			Message: "salary_compensation must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string           `json:"-"`
	FirstName          *string          `json:"first_name,omitempty"`
	LastName           *string          `json:"last_name,omitempty"`
	Email              *string          `json:"email,omitempty"`
	EmploymentType     *string          `json:"employment_type,omitempty"`
	EndDate            *string          `json:"end_date,omitempty"`
	SalaryCompensation *decimal.Decimal `json:"salary_compensation,omitempty"`
	PayFrequency       *string          `json:"pay_frequency,omitempty"`
	Status             *string          `json:"status,omitempty"`
	ClientID           *string          `json:"client_id,omitempty"`
	RoleID             *string          `json:"role_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, employmentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of contractor, full_time, part_time",
		})
	}
	if r.PayFrequency != nil && !validator.IsInSlice(*r.PayFrequency, payFrequencies) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_frequency",
			Message: "pay_frequency must be one of weekly, biweekly, monthly",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive), string(StatusTerminated)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, inactive, terminated",
		})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.SalaryCompensation != nil && r.SalaryCompensation.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_compensation",
			Message: "salary_compensation must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddDocumentRequest struct {
	EmployeeID   string  `json:"-"`
	DocumentType string  `json:"document_type"`
	ExpiresOn    *string `json:"expires_on,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *AddDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.DocumentType) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type is required",
		})
	}
	if r.ExpiresOn != nil {
		if _, ok := validator.IsValidDate(*r.ExpiresOn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_on",
				Message: "expires_on must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                 string           `json:"id"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	EmploymentType     string           `json:"employment_type"`
	StartDate          string           `json:"start_date"`
	EndDate            *string          `json:"end_date,omitempty"`
	SalaryCompensation *decimal.Decimal `json:"salary_compensation,omitempty"`
	PayFrequency       string           `json:"pay_frequency"`
	Status             string           `json:"status"`
	ClientID           *string          `json:"client_id,omitempty"`
	ClientName         *string          `json:"client_name,omitempty"`
	RoleID             *string          `json:"role_id,omitempty"`
	RoleName           *string          `json:"role_name,omitempty"`
}

type DocumentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	DocumentType string  `json:"document_type"`
	ExpiresOn    *string `json:"expires_on,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
