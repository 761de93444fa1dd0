package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// DeactivateEmployee soft-deletes: the employee is flagged inactive so
	// historical payroll and invoice references stay valid.
	DeactivateEmployee(ctx context.Context, id string) error

	AddDocument(ctx context.Context, req AddDocumentRequest) (DocumentResponse, error)
	ListDocuments(ctx context.Context, employeeID string) ([]DocumentResponse, error)
}
