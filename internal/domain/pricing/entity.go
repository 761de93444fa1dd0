package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientPricing - a client-and-role-specific hourly rate valid over a date
// interval. EffectiveTo = nil means open-ended. At most one row may exist per
// (client_id, role_id, effective_from).
type ClientPricing struct {
	ID            string
	ClientID      string
	RoleID        string
	HourlyRate    decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ClientName *string
	RoleName   *string
}

// OverlapsPeriod reports whether the pricing interval overlaps
// [periodStart, periodEnd]. Any overlap qualifies, not strict containment:
// effective_from <= period_end AND (effective_to IS NULL OR effective_to >= period_start).
func (p ClientPricing) OverlapsPeriod(periodStart, periodEnd time.Time) bool {
	if p.EffectiveFrom.After(periodEnd) {
		return false
	}
	if p.EffectiveTo != nil && p.EffectiveTo.Before(periodStart) {
		return false
	}
	return true
}
