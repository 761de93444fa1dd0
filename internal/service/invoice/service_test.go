package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
)

type stubClientRepo struct {
	client.ClientRepository
	clients map[string]client.Client
}

func (s *stubClientRepo) GetByID(_ context.Context, id string) (client.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}
	return c, nil
}

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

type stubInvoiceRepo struct {
	invoice.InvoiceRepository
	byClientPeriod map[string]invoice.ClientInvoice
}

func (s *stubInvoiceRepo) GetByClientPeriod(_ context.Context, clientID, payPeriodID string) (invoice.ClientInvoice, error) {
	inv, ok := s.byClientPeriod[clientID+"/"+payPeriodID]
	if !ok {
		return invoice.ClientInvoice{}, invoice.ErrInvoiceNotFound
	}
	return inv, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	activeByClient map[string][]employee.Employee
}

func (s *stubEmployeeRepo) GetActiveByClientID(_ context.Context, clientID string) ([]employee.Employee, error) {
	return s.activeByClient[clientID], nil
}

func invoiceTestFixtures() (client.Client, period.PayPeriod) {
	c := client.Client{ID: "client-1", Name: "Acme Staffing", IsActive: true}
	return c, marchPeriod()
}

func TestInvoiceService_GenerateInvoice_SecondInvoiceConflicts(t *testing.T) {
	c, p := invoiceTestFixtures()
	existing := invoice.ClientInvoice{
		ID:            "inv-1",
		ClientID:      c.ID,
		PayPeriodID:   p.ID,
		InvoiceNumber: "INV-2026-0007",
		Status:        invoice.StatusDraft,
	}
	svc := NewInvoiceService(
		nil,
		&stubInvoiceRepo{byClientPeriod: map[string]invoice.ClientInvoice{c.ID + "/" + p.ID: existing}},
		&stubClientRepo{clients: map[string]client.Client{c.ID: c}},
		&stubPeriodRepo{periods: map[string]period.PayPeriod{p.ID: p}},
		nil,
		nil,
		nil,
	)

	_, err := svc.GenerateInvoice(context.Background(), invoice.GenerateInvoiceRequest{
		ClientID:    c.ID,
		PayPeriodID: p.ID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, invoice.ErrInvoiceAlreadyExists)

	var exists *invoice.InvoiceExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "inv-1", exists.InvoiceID)
	assert.Equal(t, "INV-2026-0007", exists.InvoiceNumber)
	assert.Equal(t, invoice.StatusDraft, exists.Status)
	assert.Contains(t, err.Error(), "inv-1")
	assert.Contains(t, err.Error(), "draft")
}

func TestInvoiceService_GenerateInvoice_NoActiveEmployees(t *testing.T) {
	c, p := invoiceTestFixtures()
	svc := NewInvoiceService(
		nil,
		&stubInvoiceRepo{},
		&stubClientRepo{clients: map[string]client.Client{c.ID: c}},
		&stubPeriodRepo{periods: map[string]period.PayPeriod{p.ID: p}},
		&stubEmployeeRepo{},
		nil,
		nil,
	)

	_, err := svc.GenerateInvoice(context.Background(), invoice.GenerateInvoiceRequest{
		ClientID:    c.ID,
		PayPeriodID: p.ID,
	})

	assert.ErrorIs(t, err, invoice.ErrNoBillableEntity)
}

func TestInvoiceService_GenerateInvoice_ClientNotFound(t *testing.T) {
	svc := NewInvoiceService(nil, &stubInvoiceRepo{}, &stubClientRepo{}, &stubPeriodRepo{}, nil, nil, nil)

	_, err := svc.GenerateInvoice(context.Background(), invoice.GenerateInvoiceRequest{
		ClientID:    "missing",
		PayPeriodID: "period-1",
	})

	assert.ErrorIs(t, err, client.ErrClientNotFound)
}
