package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
	"github.com/staffhive/staffhive-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db            *database.DB
	payrollRepo   payroll.PayrollRepository
	periodRepo    period.PeriodRepository
	employeeRepo  employee.EmployeeRepository
	workEntryRepo workentry.WorkEntryRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	periodRepo period.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
	workEntryRepo workentry.WorkEntryRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:            db,
		payrollRepo:   payrollRepo,
		periodRepo:    periodRepo,
		employeeRepo:  employeeRepo,
		workEntryRepo: workEntryRepo,
	}
}

func toRunResponse(run payroll.PayrollRun, entries []payroll.PayrollEntry) payroll.RunResponse {
	resp := payroll.RunResponse{
		ID:            run.ID,
		PayPeriodID:   run.PayPeriodID,
		RunDate:       run.RunDate.Format("2006-01-02"),
		TotalAmount:   run.TotalAmount,
		EmployeeCount: run.EmployeeCount,
		Status:        string(run.Status),
	}
	if run.PeriodStart != nil {
		start := run.PeriodStart.Format("2006-01-02")
		resp.PeriodStart = &start
	}
	if run.PeriodEnd != nil {
		end := run.PeriodEnd.Format("2006-01-02")
		resp.PeriodEnd = &end
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	return resp
}

func toEntryResponse(e payroll.PayrollEntry) payroll.EntryResponse {
	resp := payroll.EntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		BaseHours:  e.BaseHours,
		HourlyRate: e.HourlyRate,
		BasePay:    e.BasePay,
		LeadsBonus: e.LeadsBonus,
		SpifsBonus: e.SpifsBonus,
		TotalGross: e.TotalGross,
		Deductions: e.Deductions,
		NetPay:     e.NetPay,
	}
	if e.EmployeeFirstName != nil && e.EmployeeLastName != nil {
		name := *e.EmployeeFirstName + " " + *e.EmployeeLastName
		resp.EmployeeName = &name
	}
	return resp
}

// GenerateRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateRun(ctx context.Context, req payroll.GenerateRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.PayPeriodID)
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return payroll.RunResponse{}, period.ErrPeriodNotFound
		}
		return payroll.RunResponse{}, fmt.Errorf("failed to get pay period: %w", err)
	}
	if p.Status != period.StatusClosed {
		return payroll.RunResponse{}, period.ErrPeriodNotClosed
	}

	// Friendlier pre-check; the unique index on pay_period_id is the real
	// guard against two concurrent generations.
	if existing, err := s.payrollRepo.GetRunByPeriodID(ctx, p.ID); err == nil {
		return payroll.RunResponse{}, &payroll.RunExistsError{
			PayPeriodID: p.ID,
			RunID:       existing.ID,
			Status:      existing.Status,
		}
	} else if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.RunResponse{}, fmt.Errorf("failed to check for existing payroll run: %w", err)
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	summaries, err := s.workEntryRepo.SummarizeByPeriod(ctx, p.ID)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to summarize work entries: %w", err)
	}

	entries, total := buildEntries(employees, summaries, p)

	run := payroll.PayrollRun{
		ID:            uuid.New().String(),
		PayPeriodID:   p.ID,
		RunDate:       time.Now().UTC(),
		TotalAmount:   total,
		EmployeeCount: len(entries),
		Status:        payroll.StatusDraft,
	}

	var created payroll.PayrollRun
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		created, err = s.payrollRepo.CreateRunWithEntries(txCtx, run, entries)
		return err
	})
	if err != nil {
		if errors.Is(err, payroll.ErrRunAlreadyExists) {
			return payroll.RunResponse{}, payroll.ErrRunAlreadyExists
		}
		return payroll.RunResponse{}, fmt.Errorf("failed to persist payroll run: %w", err)
	}

	persisted, err := s.payrollRepo.GetEntriesByRunID(ctx, created.ID)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to load payroll entries: %w", err)
	}

	created.PeriodStart = &p.PeriodStart
	created.PeriodEnd = &p.PeriodEnd
	return toRunResponse(created, persisted), nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrRunNotFound) {
			return payroll.RunResponse{}, payroll.ErrRunNotFound
		}
		return payroll.RunResponse{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	entries, err := s.payrollRepo.GetEntriesByRunID(ctx, run.ID)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to load payroll entries: %w", err)
	}

	return toRunResponse(run, entries), nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context, status *string) ([]payroll.RunResponse, error) {
	runs, err := s.payrollRepo.ListRuns(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}

	responses := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toRunResponse(run, nil))
	}

	return responses, nil
}

// TransitionRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) TransitionRun(ctx context.Context, req payroll.TransitionRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, payroll.ErrRunNotFound) {
			return payroll.RunResponse{}, payroll.ErrRunNotFound
		}
		return payroll.RunResponse{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	target := payroll.Status(req.Status)
	if err := statemachine.Attempt("payroll run", payroll.Transitions, string(run.Status), req.Status); err != nil {
		return payroll.RunResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.payrollRepo.UpdateRunStatus(txCtx, run.ID, target); err != nil {
			return fmt.Errorf("failed to update payroll run status: %w", err)
		}
		// Sending the run settles the period.
		if target == payroll.StatusSent {
			if err := s.periodRepo.UpdateStatus(txCtx, run.PayPeriodID, period.StatusProcessed); err != nil {
				return fmt.Errorf("failed to mark pay period processed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run.Status = target
	return toRunResponse(run, nil), nil
}
