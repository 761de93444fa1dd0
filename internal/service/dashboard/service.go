package dashboard

import (
	"context"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/dashboard"
	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
)

const expiryAlertWindowDays = 30

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	employeeRepo  employee.EmployeeRepository
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		employeeRepo:  employeeRepo,
	}
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	counts, err := s.dashboardRepo.GetSummaryCounts(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	docs, err := s.employeeRepo.GetExpiringDocuments(ctx, expiryAlertWindowDays)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to get expiring documents: %w", err)
	}

	resp := dashboard.SummaryResponse{
		ActiveEmployees:   counts.ActiveEmployees,
		ActiveClients:     counts.ActiveClients,
		OpenPeriods:       counts.OpenPeriods,
		PendingTimeOff:    counts.PendingTimeOff,
		DraftInvoices:     counts.DraftInvoices,
		ExpiringDocuments: make([]employee.DocumentResponse, 0, len(docs)),
	}
	for _, d := range docs {
		doc := employee.DocumentResponse{
			ID:           d.ID,
			EmployeeID:   d.EmployeeID,
			EmployeeName: d.EmployeeName,
			DocumentType: d.DocumentType,
			Notes:        d.Notes,
		}
		if d.ExpiresOn != nil {
			expires := d.ExpiresOn.Format("2006-01-02")
			doc.ExpiresOn = &expires
		}
		resp.ExpiringDocuments = append(resp.ExpiringDocuments, doc)
	}

	return resp, nil
}
