package dashboard

import "context"

type DashboardRepository interface {
	GetSummaryCounts(ctx context.Context) (SummaryCounts, error)
}
