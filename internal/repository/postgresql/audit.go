package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/audit"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(ctx context.Context, rec audit.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_records (id, action, entity_type, entity_id, actor_id, details)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, rec.Action, rec.EntityType, rec.EntityID, rec.ActorID, rec.Details); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	return nil
}

func (r *auditRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]audit.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, action, entity_type, entity_id, actor_id, details, created_at
		FROM audit_records
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	var records []audit.Record
	for rows.Next() {
		var rec audit.Record
		if err := rows.Scan(&rec.ID, &rec.Action, &rec.EntityType, &rec.EntityID, &rec.ActorID, &rec.Details, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
