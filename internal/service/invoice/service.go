package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
	"github.com/staffhive/staffhive-backend-go/internal/repository/postgresql"
)

type InvoiceServiceImpl struct {
	db            *database.DB
	invoiceRepo   invoice.InvoiceRepository
	clientRepo    client.ClientRepository
	periodRepo    period.PeriodRepository
	employeeRepo  employee.EmployeeRepository
	pricingRepo   pricing.PricingRepository
	workEntryRepo workentry.WorkEntryRepository
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	clientRepo client.ClientRepository,
	periodRepo period.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
	pricingRepo pricing.PricingRepository,
	workEntryRepo workentry.WorkEntryRepository,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:            db,
		invoiceRepo:   invoiceRepo,
		clientRepo:    clientRepo,
		periodRepo:    periodRepo,
		employeeRepo:  employeeRepo,
		pricingRepo:   pricingRepo,
		workEntryRepo: workEntryRepo,
	}
}

func toInvoiceResponse(inv invoice.ClientInvoice, lines []invoice.InvoiceLineItem) invoice.InvoiceResponse {
	resp := invoice.InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		PayPeriodID:   inv.PayPeriodID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		TotalAmount:   inv.TotalAmount,
		Status:        string(inv.Status),
	}
	if inv.PeriodStart != nil {
		start := inv.PeriodStart.Format("2006-01-02")
		resp.PeriodStart = &start
	}
	if inv.PeriodEnd != nil {
		end := inv.PeriodEnd.Format("2006-01-02")
		resp.PeriodEnd = &end
	}
	for _, l := range lines {
		resp.LineItems = append(resp.LineItems, invoice.LineItemResponse{
			ID:          l.ID,
			EmployeeID:  l.EmployeeID,
			Description: l.Description,
			Hours:       l.Hours,
			HourlyRate:  l.HourlyRate,
			Amount:      l.Amount,
		})
	}
	return resp
}

// GenerateInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GenerateInvoice(ctx context.Context, req invoice.GenerateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	c, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return invoice.InvoiceResponse{}, client.ErrClientNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get client: %w", err)
	}

	p, err := s.periodRepo.GetByID(ctx, req.PayPeriodID)
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return invoice.InvoiceResponse{}, period.ErrPeriodNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	// Friendlier pre-check; the unique index on (client_id, pay_period_id)
	// is the real guard.
	if existing, err := s.invoiceRepo.GetByClientPeriod(ctx, c.ID, p.ID); err == nil {
		return invoice.InvoiceResponse{}, &invoice.InvoiceExistsError{
			ClientID:      c.ID,
			PayPeriodID:   p.ID,
			InvoiceID:     existing.ID,
			InvoiceNumber: existing.InvoiceNumber,
			Status:        existing.Status,
		}
	} else if !errors.Is(err, invoice.ErrInvoiceNotFound) {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to check for existing invoice: %w", err)
	}

	employees, err := s.employeeRepo.GetActiveByClientID(ctx, c.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to list client employees: %w", err)
	}
	if len(employees) == 0 {
		return invoice.InvoiceResponse{}, invoice.ErrNoBillableEntity
	}

	summaries, err := s.workEntryRepo.SummarizeByPeriod(ctx, p.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to summarize work entries: %w", err)
	}

	prices, err := s.pricingRepo.ListOverlapping(ctx, c.ID, p.PeriodStart, p.PeriodEnd)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to load client pricing: %w", err)
	}

	lines, total := buildLines(employees, summaries, prices, p)
	if len(lines) == 0 {
		return invoice.InvoiceResponse{}, invoice.ErrNoBillableHours
	}

	now := time.Now().UTC()

	var created invoice.ClientInvoice
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		seq, err := s.invoiceRepo.NextInvoiceNumber(txCtx, now.Year())
		if err != nil {
			return err
		}

		created, err = s.invoiceRepo.CreateInvoiceWithLines(txCtx, invoice.ClientInvoice{
			ID:            uuid.New().String(),
			ClientID:      c.ID,
			PayPeriodID:   p.ID,
			InvoiceNumber: invoice.FormatInvoiceNumber(now.Year(), seq),
			InvoiceDate:   now,
			TotalAmount:   total,
			Status:        invoice.StatusDraft,
		}, lines)
		return err
	})
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceAlreadyExists) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceAlreadyExists
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to persist invoice: %w", err)
	}

	persisted, err := s.invoiceRepo.GetLinesByInvoiceID(ctx, created.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to load invoice line items: %w", err)
	}

	created.ClientName = &c.Name
	created.PeriodStart = &p.PeriodStart
	created.PeriodEnd = &p.PeriodEnd
	return toInvoiceResponse(created, persisted), nil
}

// GetInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	lines, err := s.invoiceRepo.GetLinesByInvoiceID(ctx, inv.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to load invoice line items: %w", err)
	}

	return toInvoiceResponse(inv, lines), nil
}

// ListInvoices implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, clientID *string, status *string) ([]invoice.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx, clientID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	responses := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, toInvoiceResponse(inv, nil))
	}

	return responses, nil
}

// TransitionInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) TransitionInvoice(ctx context.Context, req invoice.TransitionInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	target := invoice.Status(req.Status)
	if err := statemachine.Attempt("invoice", invoice.Transitions, string(inv.Status), req.Status); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, inv.ID, target); err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to update invoice status: %w", err)
	}

	inv.Status = target
	return toInvoiceResponse(inv, nil), nil
}
