package dashboard

import "github.com/staffhive/staffhive-backend-go/internal/domain/employee"

// SummaryCounts - headline numbers for the back-office dashboard.
type SummaryCounts struct {
	ActiveEmployees int64
	ActiveClients   int64
	OpenPeriods     int64
	PendingTimeOff  int64
	DraftInvoices   int64
}

type SummaryResponse struct {
	ActiveEmployees   int64                       `json:"active_employees"`
	ActiveClients     int64                       `json:"active_clients"`
	OpenPeriods       int64                       `json:"open_pay_periods"`
	PendingTimeOff    int64                       `json:"pending_time_off"`
	DraftInvoices     int64                       `json:"draft_invoices"`
	ExpiringDocuments []employee.DocumentResponse `json:"expiring_documents"`
}
