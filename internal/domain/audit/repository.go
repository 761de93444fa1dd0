package audit

import "context"

type AuditRepository interface {
	Append(ctx context.Context, rec Record) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Record, error)
}
