package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	workEntryRepo workentry.WorkEntryRepository
	periodRepo    period.PeriodRepository
	employeeRepo  employee.EmployeeRepository
}

func NewTimesheetService(
	workEntryRepo workentry.WorkEntryRepository,
	periodRepo period.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
) workentry.TimesheetService {
	return &TimesheetServiceImpl{
		workEntryRepo: workEntryRepo,
		periodRepo:    periodRepo,
		employeeRepo:  employeeRepo,
	}
}

func toResponse(e workentry.WorkEntry) workentry.WorkEntryResponse {
	return workentry.WorkEntryResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		EmployeeName:   e.EmployeeName,
		PayPeriodID:    e.PayPeriodID,
		WorkDate:       e.WorkDate.Format("2006-01-02"),
		HoursWorked:    e.HoursWorked,
		LeadsProcessed: e.LeadsProcessed,
		Spifs:          e.Spifs,
		Notes:          e.Notes,
	}
}

// SetWorkEntry implements workentry.TimesheetService.
func (s *TimesheetServiceImpl) SetWorkEntry(ctx context.Context, req workentry.SetWorkEntryRequest) (workentry.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return workentry.WorkEntryResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.PayPeriodID)
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return workentry.WorkEntryResponse{}, period.ErrPeriodNotFound
		}
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to get pay period: %w", err)
	}
	if p.Status != period.StatusOpen {
		return workentry.WorkEntryResponse{}, period.ErrPeriodNotOpen
	}

	workDate, _ := validator.IsValidDate(req.WorkDate)
	if !p.ContainsDate(workDate) {
		return workentry.WorkEntryResponse{}, workentry.ErrDateOutsidePeriod
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return workentry.WorkEntryResponse{}, employee.ErrEmployeeNotFound
		}
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	entry := workentry.WorkEntry{
		EmployeeID:     req.EmployeeID,
		PayPeriodID:    req.PayPeriodID,
		WorkDate:       workDate,
		HoursWorked:    decimal.Zero,
		LeadsProcessed: 0,
		Spifs:          decimal.Zero,
		Notes:          req.Notes,
	}
	if req.HoursWorked != nil {
		entry.HoursWorked = *req.HoursWorked
	}
	if req.LeadsProcessed != nil {
		entry.LeadsProcessed = *req.LeadsProcessed
	}
	if req.Spifs != nil {
		entry.Spifs = *req.Spifs
	}

	saved, err := s.workEntryRepo.Upsert(ctx, entry)
	if err != nil {
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to save work entry: %w", err)
	}

	return toResponse(saved), nil
}

// GetWorkEntry implements workentry.TimesheetService.
func (s *TimesheetServiceImpl) GetWorkEntry(ctx context.Context, id string) (workentry.WorkEntryResponse, error) {
	e, err := s.workEntryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, workentry.ErrWorkEntryNotFound) {
			return workentry.WorkEntryResponse{}, workentry.ErrWorkEntryNotFound
		}
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to get work entry: %w", err)
	}

	return toResponse(e), nil
}

// ListByPeriod implements workentry.TimesheetService.
func (s *TimesheetServiceImpl) ListByPeriod(ctx context.Context, payPeriodID string, employeeID *string) ([]workentry.WorkEntryResponse, error) {
	entries, err := s.workEntryRepo.ListByPeriod(ctx, payPeriodID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}

	responses := make([]workentry.WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

// DeleteWorkEntry implements workentry.TimesheetService.
func (s *TimesheetServiceImpl) DeleteWorkEntry(ctx context.Context, id string) error {
	e, err := s.workEntryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, workentry.ErrWorkEntryNotFound) {
			return workentry.ErrWorkEntryNotFound
		}
		return fmt.Errorf("failed to get work entry: %w", err)
	}

	p, err := s.periodRepo.GetByID(ctx, e.PayPeriodID)
	if err != nil {
		return fmt.Errorf("failed to get pay period: %w", err)
	}
	if p.Status != period.StatusOpen {
		return period.ErrPeriodNotOpen
	}

	if err := s.workEntryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}

	return nil
}
