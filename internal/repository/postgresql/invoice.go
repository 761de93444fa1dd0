package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) NextInvoiceNumber(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Per-year counter row, incremented atomically. Run inside the invoice
	// insert transaction so an aborted insert does not consume a number that
	// commits anyway.
	query := `
		INSERT INTO invoice_sequences (year, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		RETURNING last_seq
	`

	var seq int
	if err := q.QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	return seq, nil
}

func (r *invoiceRepository) CreateInvoiceWithLines(ctx context.Context, inv invoice.ClientInvoice, lines []invoice.InvoiceLineItem) (invoice.ClientInvoice, error) {
	q := GetQuerier(ctx, r.db)

	invQuery := `
		INSERT INTO client_invoices (id, client_id, pay_period_id, invoice_number, invoice_date, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, client_id, pay_period_id, invoice_number, invoice_date, total_amount, status, created_at, updated_at
	`

	var created invoice.ClientInvoice
	err := q.QueryRow(ctx, invQuery,
		inv.ID, inv.ClientID, inv.PayPeriodID, inv.InvoiceNumber, inv.InvoiceDate, inv.TotalAmount, inv.Status,
	).Scan(
		&created.ID, &created.ClientID, &created.PayPeriodID, &created.InvoiceNumber,
		&created.InvoiceDate, &created.TotalAmount, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_client_invoices_client_period") {
			return invoice.ClientInvoice{}, invoice.ErrInvoiceAlreadyExists
		}
		return invoice.ClientInvoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	lineQuery := `
		INSERT INTO invoice_line_items (id, invoice_id, employee_id, description, hours, hourly_rate, amount)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
	`

	for _, l := range lines {
		if _, err := q.Exec(ctx, lineQuery,
			created.ID, l.EmployeeID, l.Description, l.Hours, l.HourlyRate, l.Amount,
		); err != nil {
			return invoice.ClientInvoice{}, fmt.Errorf("failed to create invoice line item: %w", err)
		}
	}

	return created, nil
}

const invoiceSelect = `
	SELECT ci.id, ci.client_id, ci.pay_period_id, ci.invoice_number, ci.invoice_date,
		   ci.total_amount, ci.status, ci.created_at, ci.updated_at,
		   c.name, pp.period_start, pp.period_end
	FROM client_invoices ci
	JOIN clients c ON c.id = ci.client_id
	JOIN pay_periods pp ON pp.id = ci.pay_period_id
`

func scanInvoice(row pgx.Row) (invoice.ClientInvoice, error) {
	var inv invoice.ClientInvoice
	err := row.Scan(
		&inv.ID, &inv.ClientID, &inv.PayPeriodID, &inv.InvoiceNumber, &inv.InvoiceDate,
		&inv.TotalAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.ClientName, &inv.PeriodStart, &inv.PeriodEnd,
	)
	return inv, err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.ClientInvoice, error) {
	q := GetQuerier(ctx, r.db)

	inv, err := scanInvoice(q.QueryRow(ctx, invoiceSelect+` WHERE ci.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.ClientInvoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.ClientInvoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) GetByClientPeriod(ctx context.Context, clientID, payPeriodID string) (invoice.ClientInvoice, error) {
	q := GetQuerier(ctx, r.db)

	inv, err := scanInvoice(q.QueryRow(ctx,
		invoiceSelect+` WHERE ci.client_id = $1 AND ci.pay_period_id = $2`,
		clientID, payPeriodID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.ClientInvoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.ClientInvoice{}, fmt.Errorf("failed to get invoice by client and period: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, clientID *string, status *string) ([]invoice.ClientInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := invoiceSelect + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if clientID != nil {
		query += fmt.Sprintf(" AND ci.client_id = $%d", argPos)
		args = append(args, *clientID)
		argPos++
	}
	if status != nil {
		query += fmt.Sprintf(" AND ci.status = $%d", argPos)
		args = append(args, *status)
		argPos++
	}
	query += " ORDER BY ci.invoice_date DESC, ci.invoice_number DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.ClientInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *invoiceRepository) GetLinesByInvoiceID(ctx context.Context, invoiceID string) ([]invoice.InvoiceLineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, invoice_id, employee_id, description, hours, hourly_rate, amount, created_at
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY description
	`

	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice line items: %w", err)
	}
	defer rows.Close()

	var lines []invoice.InvoiceLineItem
	for rows.Next() {
		var l invoice.InvoiceLineItem
		if err := rows.Scan(
			&l.ID, &l.InvoiceID, &l.EmployeeID, &l.Description, &l.Hours, &l.HourlyRate,
			&l.Amount, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice line item: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status invoice.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE client_invoices SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}

	return nil
}
