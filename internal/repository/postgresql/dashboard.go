package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/dashboard"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetSummaryCounts(ctx context.Context) (dashboard.SummaryCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE status = 'active'),
			(SELECT COUNT(*) FROM clients WHERE is_active = true),
			(SELECT COUNT(*) FROM pay_periods WHERE status = 'open'),
			(SELECT COUNT(*) FROM time_off_requests WHERE status = 'pending'),
			(SELECT COUNT(*) FROM client_invoices WHERE status = 'draft')
	`

	var counts dashboard.SummaryCounts
	err := q.QueryRow(ctx, query).Scan(
		&counts.ActiveEmployees,
		&counts.ActiveClients,
		&counts.OpenPeriods,
		&counts.PendingTimeOff,
		&counts.DraftInvoices,
	)
	if err != nil {
		return dashboard.SummaryCounts{}, fmt.Errorf("failed to get dashboard summary counts: %w", err)
	}

	return counts, nil
}
