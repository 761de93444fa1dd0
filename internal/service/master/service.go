package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/domain/role"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type MasterService interface {
	// Role operations
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetRole(ctx context.Context, id string) (role.RoleResponse, error)
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
	UpdateRole(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error)
	// DeleteRole refuses while active employees still hold the role.
	DeleteRole(ctx context.Context, id string) error

	// Client pricing operations
	CreatePricing(ctx context.Context, req pricing.CreatePricingRequest) (pricing.PricingResponse, error)
	ListPricingByClient(ctx context.Context, clientID string) ([]pricing.PricingResponse, error)
	DeletePricing(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	roleRepo     role.RoleRepository
	pricingRepo  pricing.PricingRepository
	employeeRepo employee.EmployeeRepository
}

func NewMasterService(
	roleRepo role.RoleRepository,
	pricingRepo pricing.PricingRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		roleRepo:     roleRepo,
		pricingRepo:  pricingRepo,
		employeeRepo: employeeRepo,
	}
}

func toRoleResponse(r role.Role) role.RoleResponse {
	return role.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		HourlyRate:  r.HourlyRate,
		Description: r.Description,
	}
}

func toPricingResponse(p pricing.ClientPricing) pricing.PricingResponse {
	resp := pricing.PricingResponse{
		ID:            p.ID,
		ClientID:      p.ClientID,
		RoleID:        p.RoleID,
		RoleName:      p.RoleName,
		HourlyRate:    p.HourlyRate,
		EffectiveFrom: p.EffectiveFrom.Format("2006-01-02"),
	}
	if p.EffectiveTo != nil {
		to := p.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}

// ==================== ROLE OPERATIONS ====================

func (s *masterServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		Name:        req.Name,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, role.ErrRoleNameExists) {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}

	return toRoleResponse(created), nil
}

func (s *masterServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return role.RoleResponse{}, role.ErrRoleNotFound
		}
		return role.RoleResponse{}, fmt.Errorf("failed to get role: %w", err)
	}

	return toRoleResponse(r), nil
}

func (s *masterServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, toRoleResponse(r))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	r, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return role.RoleResponse{}, role.ErrRoleNotFound
		}
		return role.RoleResponse{}, fmt.Errorf("failed to get role: %w", err)
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.HourlyRate != nil {
		r.HourlyRate = req.HourlyRate
	}
	if req.Description != nil {
		r.Description = req.Description
	}

	updated, err := s.roleRepo.Update(ctx, r)
	if err != nil {
		if errors.Is(err, role.ErrRoleNameExists) {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
		return role.RoleResponse{}, fmt.Errorf("failed to update role: %w", err)
	}

	return toRoleResponse(updated), nil
}

func (s *masterServiceImpl) DeleteRole(ctx context.Context, id string) error {
	if _, err := s.roleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return role.ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role: %w", err)
	}

	inUse, err := s.employeeRepo.CountActiveByRoleID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count employees holding role: %w", err)
	}
	if inUse > 0 {
		return role.ErrRoleInUse
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	return nil
}

// ==================== CLIENT PRICING OPERATIONS ====================

func (s *masterServiceImpl) CreatePricing(ctx context.Context, req pricing.CreatePricingRequest) (pricing.PricingResponse, error) {
	if err := req.Validate(); err != nil {
		return pricing.PricingResponse{}, err
	}

	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return pricing.PricingResponse{}, role.ErrRoleNotFound
		}
		return pricing.PricingResponse{}, fmt.Errorf("failed to get role: %w", err)
	}

	from, _ := validator.IsValidDate(req.EffectiveFrom)

	p := pricing.ClientPricing{
		ClientID:      req.ClientID,
		RoleID:        req.RoleID,
		HourlyRate:    req.HourlyRate,
		EffectiveFrom: from,
	}
	if req.EffectiveTo != nil {
		to, _ := validator.IsValidDate(*req.EffectiveTo)
		p.EffectiveTo = &to
	}

	created, err := s.pricingRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, pricing.ErrPricingExists) {
			return pricing.PricingResponse{}, pricing.ErrPricingExists
		}
		return pricing.PricingResponse{}, fmt.Errorf("failed to create client pricing: %w", err)
	}

	return toPricingResponse(created), nil
}

func (s *masterServiceImpl) ListPricingByClient(ctx context.Context, clientID string) ([]pricing.PricingResponse, error) {
	prices, err := s.pricingRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client pricing: %w", err)
	}

	responses := make([]pricing.PricingResponse, 0, len(prices))
	for _, p := range prices {
		responses = append(responses, toPricingResponse(p))
	}

	return responses, nil
}

func (s *masterServiceImpl) DeletePricing(ctx context.Context, id string) error {
	if _, err := s.pricingRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pricing.ErrPricingNotFound) {
			return pricing.ErrPricingNotFound
		}
		return fmt.Errorf("failed to get client pricing: %w", err)
	}

	if err := s.pricingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client pricing: %w", err)
	}

	return nil
}
