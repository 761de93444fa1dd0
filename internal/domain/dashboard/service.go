package dashboard

import "context"

type DashboardService interface {
	// GetSummary returns the headline counts plus compliance documents
	// expiring within the next 30 days.
	GetSummary(ctx context.Context) (SummaryResponse, error)
}
