package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type PeriodServiceImpl struct {
	periodRepo  period.PeriodRepository
	payrollRepo payroll.PayrollRepository
}

func NewPeriodService(
	periodRepo period.PeriodRepository,
	payrollRepo payroll.PayrollRepository,
) period.PeriodService {
	return &PeriodServiceImpl{
		periodRepo:  periodRepo,
		payrollRepo: payrollRepo,
	}
}

func toResponse(p period.PayPeriod) period.PeriodResponse {
	return period.PeriodResponse{
		ID:          p.ID,
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
		PeriodType:  p.PeriodType,
		Status:      string(p.Status),
	}
}

// CreatePeriod implements period.PeriodService.
func (s *PeriodServiceImpl) CreatePeriod(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	start, _ := validator.IsValidDate(req.PeriodStart)
	end, _ := validator.IsValidDate(req.PeriodEnd)

	overlapping, err := s.periodRepo.CountOverlapping(ctx, req.PeriodType, start, end)
	if err != nil {
		return period.PeriodResponse{}, fmt.Errorf("failed to check for overlapping periods: %w", err)
	}
	if overlapping > 0 {
		return period.PeriodResponse{}, period.ErrPeriodOverlap
	}

	created, err := s.periodRepo.Create(ctx, period.PayPeriod{
		PeriodStart: start,
		PeriodEnd:   end,
		PeriodType:  req.PeriodType,
		Status:      period.StatusOpen,
	})
	if err != nil {
		return period.PeriodResponse{}, fmt.Errorf("failed to create pay period: %w", err)
	}

	return toResponse(created), nil
}

// GetPeriod implements period.PeriodService.
func (s *PeriodServiceImpl) GetPeriod(ctx context.Context, id string) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return period.PeriodResponse{}, period.ErrPeriodNotFound
		}
		return period.PeriodResponse{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return toResponse(p), nil
}

// ListPeriods implements period.PeriodService.
func (s *PeriodServiceImpl) ListPeriods(ctx context.Context, status *string) ([]period.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}

	responses := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}

// TransitionPeriod implements period.PeriodService.
func (s *PeriodServiceImpl) TransitionPeriod(ctx context.Context, req period.TransitionPeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return period.PeriodResponse{}, period.ErrPeriodNotFound
		}
		return period.PeriodResponse{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	target := period.Status(req.Status)
	if err := statemachine.Attempt("pay period", period.Transitions, string(p.Status), req.Status); err != nil {
		return period.PeriodResponse{}, err
	}

	// A closed period with a payroll run is frozen: reopening it would let
	// work entries drift away from the run already computed over them.
	if p.Status == period.StatusClosed && target == period.StatusOpen {
		_, err := s.payrollRepo.GetRunByPeriodID(ctx, p.ID)
		if err == nil {
			return period.PeriodResponse{}, period.ErrPeriodHasRun
		}
		if !errors.Is(err, payroll.ErrRunNotFound) {
			return period.PeriodResponse{}, fmt.Errorf("failed to check for payroll run: %w", err)
		}
	}

	if err := s.periodRepo.UpdateStatus(ctx, p.ID, target); err != nil {
		return period.PeriodResponse{}, fmt.Errorf("failed to update pay period status: %w", err)
	}

	p.Status = target
	return toResponse(p), nil
}
