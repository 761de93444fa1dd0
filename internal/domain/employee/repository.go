package employee

import "context"

type EmployeeFilter struct {
	Status   *string
	ClientID *string
	RoleID   *string
}

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	// GetActive returns active employees with role and client joined.
	GetActive(ctx context.Context) ([]Employee, error)
	GetActiveByClientID(ctx context.Context, clientID string) ([]Employee, error)
	CountActiveByRoleID(ctx context.Context, roleID string) (int64, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	// SetStatus performs the soft delete: employees are never removed, only
	// flagged, so historical payroll and invoice references stay valid.
	SetStatus(ctx context.Context, id string, status Status) error

	AddDocument(ctx context.Context, d ComplianceDocument) (ComplianceDocument, error)
	GetDocumentsByEmployee(ctx context.Context, employeeID string) ([]ComplianceDocument, error)
	// GetExpiringDocuments returns documents expiring within the given number
	// of days, soonest first.
	GetExpiringDocuments(ctx context.Context, withinDays int) ([]ComplianceDocument, error)
}
