package timeoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/timeoff"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/validator"
)

type TimeOffServiceImpl struct {
	timeOffRepo  timeoff.TimeOffRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimeOffService(
	timeOffRepo timeoff.TimeOffRepository,
	employeeRepo employee.EmployeeRepository,
) timeoff.TimeOffService {
	return &TimeOffServiceImpl{
		timeOffRepo:  timeOffRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(t timeoff.TimeOff) timeoff.TimeOffResponse {
	return timeoff.TimeOffResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		LeaveType:    string(t.LeaveType),
		StartDate:    t.StartDate.Format("2006-01-02"),
		EndDate:      t.EndDate.Format("2006-01-02"),
		DaysCount:    t.DaysCount,
		Reason:       t.Reason,
		Status:       string(t.Status),
	}
}

// RequestTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) RequestTimeOff(ctx context.Context, req timeoff.RequestTimeOffRequest) (timeoff.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeoff.TimeOffResponse{}, employee.ErrEmployeeNotFound
		}
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	days := timeoff.WeekdayCount(start, end)
	if req.DaysCount != nil {
		days = *req.DaysCount
	}

	created, err := s.timeOffRepo.Create(ctx, timeoff.TimeOff{
		EmployeeID: req.EmployeeID,
		LeaveType:  timeoff.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		DaysCount:  days,
		Reason:     req.Reason,
		Status:     timeoff.StatusPending,
	})
	if err != nil {
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return toResponse(created), nil
}

// GetTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) GetTimeOff(ctx context.Context, id string) (timeoff.TimeOffResponse, error) {
	t, err := s.timeOffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeoff.ErrTimeOffNotFound) {
			return timeoff.TimeOffResponse{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to get time off request: %w", err)
	}

	return toResponse(t), nil
}

// ListTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) ListTimeOff(ctx context.Context, filter timeoff.TimeOffFilter) ([]timeoff.TimeOffResponse, error) {
	requests, err := s.timeOffRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off requests: %w", err)
	}

	responses := make([]timeoff.TimeOffResponse, 0, len(requests))
	for _, t := range requests {
		responses = append(responses, toResponse(t))
	}

	return responses, nil
}

// DecideTimeOff implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) DecideTimeOff(ctx context.Context, req timeoff.DecideTimeOffRequest, decidedBy string) (timeoff.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	t, err := s.timeOffRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, timeoff.ErrTimeOffNotFound) {
			return timeoff.TimeOffResponse{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to get time off request: %w", err)
	}

	target := timeoff.Status(req.Status)
	if err := statemachine.Attempt("time off request", timeoff.Transitions, string(t.Status), req.Status); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	if err := s.timeOffRepo.UpdateStatus(ctx, t.ID, target, decidedBy); err != nil {
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to update time off status: %w", err)
	}

	updated, err := s.timeOffRepo.GetByID(ctx, t.ID)
	if err != nil {
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to reload time off request: %w", err)
	}

	return toResponse(updated), nil
}
