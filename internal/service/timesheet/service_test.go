package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
)

type stubPeriodRepo struct {
	period.PeriodRepository
	periods map[string]period.PayPeriod
}

func (s *stubPeriodRepo) GetByID(_ context.Context, id string) (period.PayPeriod, error) {
	p, ok := s.periods[id]
	if !ok {
		return period.PayPeriod{}, period.ErrPeriodNotFound
	}
	return p, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type stubWorkEntryRepo struct {
	workentry.WorkEntryRepository
	entries map[string]workentry.WorkEntry
	deleted []string
}

func (s *stubWorkEntryRepo) Upsert(_ context.Context, e workentry.WorkEntry) (workentry.WorkEntry, error) {
	e.ID = "entry-1"
	return e, nil
}

func (s *stubWorkEntryRepo) GetByID(_ context.Context, id string) (workentry.WorkEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
	}
	return e, nil
}

func (s *stubWorkEntryRepo) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func marchPeriod(status period.Status) period.PayPeriod {
	return period.PayPeriod{
		ID:          "period-1",
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		PeriodType:  "biweekly",
		Status:      status,
	}
}

func newTestService(p period.PayPeriod, entries map[string]workentry.WorkEntry) (workentry.TimesheetService, *stubWorkEntryRepo) {
	workEntryRepo := &stubWorkEntryRepo{entries: entries}
	svc := NewTimesheetService(
		workEntryRepo,
		&stubPeriodRepo{periods: map[string]period.PayPeriod{p.ID: p}},
		&stubEmployeeRepo{employees: map[string]employee.Employee{"emp-1": {ID: "emp-1"}}},
	)
	return svc, workEntryRepo
}

func TestTimesheetService_SetWorkEntry_ClosedPeriodRejected(t *testing.T) {
	for _, status := range []period.Status{period.StatusClosed, period.StatusProcessed} {
		svc, _ := newTestService(marchPeriod(status), nil)

		hours := decimal.NewFromInt(8)
		_, err := svc.SetWorkEntry(context.Background(), workentry.SetWorkEntryRequest{
			EmployeeID:  "emp-1",
			PayPeriodID: "period-1",
			WorkDate:    "2026-03-03",
			HoursWorked: &hours,
		})

		assert.ErrorIs(t, err, period.ErrPeriodNotOpen, "period status %s", status)
	}
}

func TestTimesheetService_SetWorkEntry_OpenPeriodAccepted(t *testing.T) {
	svc, _ := newTestService(marchPeriod(period.StatusOpen), nil)

	hours := decimal.NewFromInt(8)
	resp, err := svc.SetWorkEntry(context.Background(), workentry.SetWorkEntryRequest{
		EmployeeID:  "emp-1",
		PayPeriodID: "period-1",
		WorkDate:    "2026-03-03",
		HoursWorked: &hours,
	})

	require.NoError(t, err)
	assert.Equal(t, "entry-1", resp.ID)
	assert.Equal(t, "2026-03-03", resp.WorkDate)
	assert.True(t, resp.HoursWorked.Equal(hours))
	// Omitted fields default to zero.
	assert.Equal(t, 0, resp.LeadsProcessed)
	assert.True(t, resp.Spifs.IsZero())
}

func TestTimesheetService_SetWorkEntry_DateOutsidePeriod(t *testing.T) {
	svc, _ := newTestService(marchPeriod(period.StatusOpen), nil)

	_, err := svc.SetWorkEntry(context.Background(), workentry.SetWorkEntryRequest{
		EmployeeID:  "emp-1",
		PayPeriodID: "period-1",
		WorkDate:    "2026-03-15",
	})

	assert.ErrorIs(t, err, workentry.ErrDateOutsidePeriod)
}

func TestTimesheetService_DeleteWorkEntry_ClosedPeriodRejected(t *testing.T) {
	entry := workentry.WorkEntry{ID: "entry-1", EmployeeID: "emp-1", PayPeriodID: "period-1"}
	svc, workEntryRepo := newTestService(marchPeriod(period.StatusClosed), map[string]workentry.WorkEntry{entry.ID: entry})

	err := svc.DeleteWorkEntry(context.Background(), entry.ID)

	assert.ErrorIs(t, err, period.ErrPeriodNotOpen)
	assert.Empty(t, workEntryRepo.deleted)
}

func TestTimesheetService_DeleteWorkEntry_OpenPeriod(t *testing.T) {
	entry := workentry.WorkEntry{ID: "entry-1", EmployeeID: "emp-1", PayPeriodID: "period-1"}
	svc, workEntryRepo := newTestService(marchPeriod(period.StatusOpen), map[string]workentry.WorkEntry{entry.ID: entry})

	err := svc.DeleteWorkEntry(context.Background(), entry.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"entry-1"}, workEntryRepo.deleted)
}
