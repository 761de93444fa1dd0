package invoice

import "context"

type InvoiceRepository interface {
	// NextInvoiceNumber increments and returns the per-year sequence counter.
	// Callers invoke it inside the invoice insert transaction so the number
	// allocation and the insert commit together.
	NextInvoiceNumber(ctx context.Context, year int) (int, error)
	// CreateInvoiceWithLines inserts the invoice header and all line items.
	// A unique violation on (client_id, pay_period_id) surfaces as
	// ErrInvoiceAlreadyExists.
	CreateInvoiceWithLines(ctx context.Context, inv ClientInvoice, lines []InvoiceLineItem) (ClientInvoice, error)
	GetByID(ctx context.Context, id string) (ClientInvoice, error)
	GetByClientPeriod(ctx context.Context, clientID, payPeriodID string) (ClientInvoice, error)
	List(ctx context.Context, clientID *string, status *string) ([]ClientInvoice, error)
	GetLinesByInvoiceID(ctx context.Context, invoiceID string) ([]InvoiceLineItem, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
