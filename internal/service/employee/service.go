package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/role"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clientRepo   client.ClientRepository
	roleRepo     role.RoleRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	clientRepo client.ClientRepository,
	roleRepo role.RoleRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
		roleRepo:     roleRepo,
	}
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		EmploymentType:     e.EmploymentType,
		StartDate:          e.StartDate.Format("2006-01-02"),
		SalaryCompensation: e.SalaryCompensation,
		PayFrequency:       e.PayFrequency,
		Status:             string(e.Status),
		ClientID:           e.ClientID,
		ClientName:         e.ClientName,
		RoleID:             e.RoleID,
		RoleName:           e.RoleName,
	}
	if e.EndDate != nil {
		end := e.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func toDocumentResponse(d employee.ComplianceDocument) employee.DocumentResponse {
	resp := employee.DocumentResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		DocumentType: d.DocumentType,
		Notes:        d.Notes,
	}
	if d.ExpiresOn != nil {
		expires := d.ExpiresOn.Format("2006-01-02")
		resp.ExpiresOn = &expires
	}
	return resp
}

// checkReferences verifies the client and role an employee is being attached
// to actually exist.
func (s *EmployeeServiceImpl) checkReferences(ctx context.Context, clientID, roleID *string) error {
	if clientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *clientID); err != nil {
			if errors.Is(err, client.ErrClientNotFound) {
				return client.ErrClientNotFound
			}
			return fmt.Errorf("failed to get client: %w", err)
		}
	}
	if roleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *roleID); err != nil {
			if errors.Is(err, role.ErrRoleNotFound) {
				return role.ErrRoleNotFound
			}
			return fmt.Errorf("failed to get role: %w", err)
		}
	}
	return nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkReferences(ctx, req.ClientID, req.RoleID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)

	e := employee.Employee{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		EmploymentType:     req.EmploymentType,
		StartDate:          startDate,
		SalaryCompensation: req.SalaryCompensation,
		PayFrequency:       req.PayFrequency,
		Status:             employee.StatusActive,
		ClientID:           req.ClientID,
		RoleID:             req.RoleID,
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		e.EndDate = &end
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return toResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.checkReferences(ctx, req.ClientID, req.RoleID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.EmploymentType != nil {
		e.EmploymentType = *req.EmploymentType
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		e.EndDate = &end
	}
	if req.SalaryCompensation != nil {
		e.SalaryCompensation = req.SalaryCompensation
	}
	if req.PayFrequency != nil {
		e.PayFrequency = *req.PayFrequency
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	if req.ClientID != nil {
		e.ClientID = req.ClientID
	}
	if req.RoleID != nil {
		e.RoleID = req.RoleID
	}

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.employeeRepo.SetStatus(ctx, id, employee.StatusInactive); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}

// AddDocument implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddDocument(ctx context.Context, req employee.AddDocumentRequest) (employee.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.DocumentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.DocumentResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.DocumentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	d := employee.ComplianceDocument{
		EmployeeID:   req.EmployeeID,
		DocumentType: req.DocumentType,
		Notes:        req.Notes,
	}
	if req.ExpiresOn != nil {
		expires, _ := validator.IsValidDate(*req.ExpiresOn)
		d.ExpiresOn = &expires
	}

	created, err := s.employeeRepo.AddDocument(ctx, d)
	if err != nil {
		return employee.DocumentResponse{}, fmt.Errorf("failed to add compliance document: %w", err)
	}

	return toDocumentResponse(created), nil
}

// ListDocuments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDocuments(ctx context.Context, employeeID string) ([]employee.DocumentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	documents, err := s.employeeRepo.GetDocumentsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compliance documents: %w", err)
	}

	responses := make([]employee.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		responses = append(responses, toDocumentResponse(d))
	}

	return responses, nil
}
