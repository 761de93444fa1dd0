package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/audit"
	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/domain/period"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
	"github.com/staffhive/staffhive-backend-go/internal/repository/postgresql"
)

// Export holds a rendered CSV plus the filename to serve it under.
type Export struct {
	Filename string
	Content  []byte
}

type ExportService interface {
	// ExportPayrollRun renders the payment CSV for a processed or sent run.
	// First export of a processed run flips it to sent and its pay period to
	// processed; re-exporting a sent run is a pure re-render.
	ExportPayrollRun(ctx context.Context, runID string, actorID *string) (Export, error)
	// ExportInvoice renders the accounting CSV for an invoice. Does not
	// touch invoice status.
	ExportInvoice(ctx context.Context, invoiceID string, actorID *string) (Export, error)
}

type ExportServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.PayrollRepository
	invoiceRepo invoice.InvoiceRepository
	periodRepo  period.PeriodRepository
	auditRepo   audit.AuditRepository
}

func NewExportService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	invoiceRepo invoice.InvoiceRepository,
	periodRepo period.PeriodRepository,
	auditRepo audit.AuditRepository,
) ExportService {
	return &ExportServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
		invoiceRepo: invoiceRepo,
		periodRepo:  periodRepo,
		auditRepo:   auditRepo,
	}
}

// appendAudit is best-effort: a lost audit row must never block a financial
// export the user is waiting on.
func (s *ExportServiceImpl) appendAudit(ctx context.Context, action, entityType, entityID string, actorID *string, details string) {
	rec := audit.Record{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		Details:    &details,
	}
	if err := s.auditRepo.Append(ctx, rec); err != nil {
		slog.Warn("Failed to append audit record", "action", action, "entity_id", entityID, "error", err)
	}
}

// ExportPayrollRun implements ExportService.
func (s *ExportServiceImpl) ExportPayrollRun(ctx context.Context, runID string, actorID *string) (Export, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, runID)
	if err != nil {
		if errors.Is(err, payroll.ErrRunNotFound) {
			return Export{}, payroll.ErrRunNotFound
		}
		return Export{}, fmt.Errorf("failed to get payroll run: %w", err)
	}
	if run.Status != payroll.StatusProcessed && run.Status != payroll.StatusSent {
		return Export{}, payroll.ErrRunNotExportable
	}

	entries, err := s.payrollRepo.GetEntriesByRunID(ctx, run.ID)
	if err != nil {
		return Export{}, fmt.Errorf("failed to load payroll entries: %w", err)
	}

	label := ""
	if run.PeriodStart != nil && run.PeriodEnd != nil {
		label = run.PeriodStart.Format("2006-01-02") + " to " + run.PeriodEnd.Format("2006-01-02")
	}

	content, err := RenderPayrollCSV(entries, label)
	if err != nil {
		return Export{}, err
	}

	// First export settles the run and its period together.
	if run.Status == payroll.StatusProcessed {
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)
			if err := s.payrollRepo.UpdateRunStatus(txCtx, run.ID, payroll.StatusSent); err != nil {
				return fmt.Errorf("failed to mark payroll run sent: %w", err)
			}
			if err := s.periodRepo.UpdateStatus(txCtx, run.PayPeriodID, period.StatusProcessed); err != nil {
				return fmt.Errorf("failed to mark pay period processed: %w", err)
			}
			return nil
		})
		if err != nil {
			return Export{}, err
		}
	}

	s.appendAudit(ctx, "payroll_run.exported", "payroll_run", run.ID, actorID,
		fmt.Sprintf("exported %d entries for period %s", len(entries), label))

	return Export{
		Filename: fmt.Sprintf("payroll_%s.csv", run.RunDate.Format("2006-01-02")),
		Content:  content,
	}, nil
}

// ExportInvoice implements ExportService.
func (s *ExportServiceImpl) ExportInvoice(ctx context.Context, invoiceID string, actorID *string) (Export, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return Export{}, invoice.ErrInvoiceNotFound
		}
		return Export{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	lines, err := s.invoiceRepo.GetLinesByInvoiceID(ctx, inv.ID)
	if err != nil {
		return Export{}, fmt.Errorf("failed to load invoice line items: %w", err)
	}
	if len(lines) == 0 {
		return Export{}, invoice.ErrInvoiceHasNoLines
	}

	content, err := RenderInvoiceCSV(inv, lines)
	if err != nil {
		return Export{}, err
	}

	s.appendAudit(ctx, "invoice.exported", "invoice", inv.ID, actorID,
		fmt.Sprintf("exported %d line items for %s", len(lines), inv.InvoiceNumber))

	return Export{
		Filename: fmt.Sprintf("invoice_%s.csv", inv.InvoiceNumber),
		Content:  content,
	}, nil
}
