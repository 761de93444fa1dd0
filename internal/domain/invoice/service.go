package invoice

import "context"

type InvoiceService interface {
	// GenerateInvoice computes and persists the single invoice for a client
	// over a pay period, one line per employee with billable hours.
	GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, clientID *string, status *string) ([]InvoiceResponse, error)
	// TransitionInvoice moves an invoice through draft → sent → paid.
	TransitionInvoice(ctx context.Context, req TransitionInvoiceRequest) (InvoiceResponse, error)
}
