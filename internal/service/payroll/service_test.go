package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
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

type stubPayrollRepo struct {
	payroll.PayrollRepository
	runsByPeriod map[string]payroll.PayrollRun
}

func (s *stubPayrollRepo) GetRunByPeriodID(_ context.Context, payPeriodID string) (payroll.PayrollRun, error) {
	run, ok := s.runsByPeriod[payPeriodID]
	if !ok {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return run, nil
}

func TestPayrollService_GenerateRun_SecondRunConflicts(t *testing.T) {
	ctx := context.Background()
	p := marchPeriod()
	existing := payroll.PayrollRun{
		ID:          "run-1",
		PayPeriodID: p.ID,
		Status:      payroll.StatusDraft,
	}
	svc := NewPayrollService(
		nil,
		&stubPayrollRepo{runsByPeriod: map[string]payroll.PayrollRun{p.ID: existing}},
		&stubPeriodRepo{periods: map[string]period.PayPeriod{p.ID: p}},
		nil,
		nil,
	)

	_, err := svc.GenerateRun(ctx, payroll.GenerateRunRequest{PayPeriodID: p.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrRunAlreadyExists)

	var exists *payroll.RunExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "run-1", exists.RunID)
	assert.Equal(t, payroll.StatusDraft, exists.Status)
	assert.Equal(t, p.ID, exists.PayPeriodID)
	assert.Contains(t, err.Error(), "run-1")
	assert.Contains(t, err.Error(), "draft")
}

func TestPayrollService_GenerateRun_PeriodMustBeClosed(t *testing.T) {
	ctx := context.Background()
	for _, status := range []period.Status{period.StatusOpen, period.StatusProcessed} {
		p := marchPeriod()
		p.Status = status
		svc := NewPayrollService(
			nil,
			&stubPayrollRepo{},
			&stubPeriodRepo{periods: map[string]period.PayPeriod{p.ID: p}},
			nil,
			nil,
		)

		_, err := svc.GenerateRun(ctx, payroll.GenerateRunRequest{PayPeriodID: p.ID})
		assert.ErrorIs(t, err, period.ErrPeriodNotClosed, "period status %s", status)
	}
}

func TestPayrollService_GenerateRun_PeriodNotFound(t *testing.T) {
	svc := NewPayrollService(nil, &stubPayrollRepo{}, &stubPeriodRepo{}, nil, nil)

	_, err := svc.GenerateRun(context.Background(), payroll.GenerateRunRequest{PayPeriodID: "missing"})
	assert.ErrorIs(t, err, period.ErrPeriodNotFound)
}
