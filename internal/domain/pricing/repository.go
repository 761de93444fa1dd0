package pricing

import (
	"context"
	"time"
)

type PricingRepository interface {
	Create(ctx context.Context, p ClientPricing) (ClientPricing, error)
	GetByID(ctx context.Context, id string) (ClientPricing, error)
	ListByClient(ctx context.Context, clientID string) ([]ClientPricing, error)
	// ListOverlapping returns the client's pricing rows whose interval
	// overlaps [periodStart, periodEnd], newest effective_from first.
	ListOverlapping(ctx context.Context, clientID string, periodStart, periodEnd time.Time) ([]ClientPricing, error)
	Delete(ctx context.Context, id string) error
}
