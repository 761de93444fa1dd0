package response

import (
	"errors"
	"net/http"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/domain/role"
	"github.com/staffhive/staffhive-backend-go/internal/domain/timeoff"
	"github.com/staffhive/staffhive-backend-go/internal/domain/user"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Rejected state transitions carry the current status and the allowed
	// set in the message.
	var transitionErr *statemachine.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	// Duplicate-generation conflicts name the existing run or invoice in
	// the message.
	var runExists *payroll.RunExistsError
	if errors.As(err, &runExists) {
		Conflict(w, runExists.Error())
		return
	}
	var invoiceExists *invoice.InvoiceExistsError
	if errors.As(err, &invoiceExists) {
		Conflict(w, invoiceExists.Error())
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Clients, roles, pricing
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client name already exists")
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role is still held by active employees")
	case errors.Is(err, pricing.ErrPricingNotFound):
		NotFound(w, "Client pricing not found")
	case errors.Is(err, pricing.ErrPricingExists):
		Conflict(w, "Pricing already exists for this client, role and effective date")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already registered")
	case errors.Is(err, employee.ErrDocumentNotFound):
		NotFound(w, "Compliance document not found")

	// Pay periods and work entries
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, period.ErrPeriodOverlap):
		Conflict(w, "Pay period overlaps an existing open or closed period of the same type")
	case errors.Is(err, period.ErrPeriodNotOpen):
		PreconditionFailed(w, "Pay period must be open")
	case errors.Is(err, period.ErrPeriodNotClosed):
		PreconditionFailed(w, "Pay period must be closed")
	case errors.Is(err, period.ErrPeriodHasRun):
		Conflict(w, "Pay period already has a payroll run")
	case errors.Is(err, workentry.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, workentry.ErrDateOutsidePeriod):
		PreconditionFailed(w, "Work date falls outside the pay period bounds")

	// Time off
	case errors.Is(err, timeoff.ErrTimeOffNotFound):
		NotFound(w, "Time off request not found")

	// Payroll
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunAlreadyExists):
		Conflict(w, "Payroll run already exists for this pay period")
	case errors.Is(err, payroll.ErrRunNotExportable):
		PreconditionFailed(w, "Payroll run must be processed or sent to export")

	// Invoices
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceAlreadyExists):
		Conflict(w, "Invoice already exists for this client and pay period")
	case errors.Is(err, invoice.ErrNoBillableEntity):
		UnprocessableEntity(w, "NO_BILLABLE_ENTITY", "Client has no active employees to bill")
	case errors.Is(err, invoice.ErrNoBillableHours):
		UnprocessableEntity(w, "NO_BILLABLE_HOURS", "No billable hours logged for this client in the pay period")
	case errors.Is(err, invoice.ErrInvoiceHasNoLines):
		PreconditionFailed(w, "Invoice has no line items to export")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
