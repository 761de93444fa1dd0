package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type pricingRepository struct {
	db *database.DB
}

func NewPricingRepository(db *database.DB) pricing.PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) Create(ctx context.Context, p pricing.ClientPricing) (pricing.ClientPricing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO client_pricing (id, client_id, role_id, hourly_rate, effective_from, effective_to)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		RETURNING id, client_id, role_id, hourly_rate, effective_from, effective_to, created_at, updated_at
	`

	var created pricing.ClientPricing
	err := q.QueryRow(ctx, query,
		p.ClientID, p.RoleID, p.HourlyRate, p.EffectiveFrom, p.EffectiveTo,
	).Scan(
		&created.ID, &created.ClientID, &created.RoleID, &created.HourlyRate,
		&created.EffectiveFrom, &created.EffectiveTo, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_client_pricing_client_role_from") {
			return pricing.ClientPricing{}, pricing.ErrPricingExists
		}
		return pricing.ClientPricing{}, fmt.Errorf("failed to create client pricing: %w", err)
	}

	return created, nil
}

func (r *pricingRepository) GetByID(ctx context.Context, id string) (pricing.ClientPricing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cp.id, cp.client_id, cp.role_id, cp.hourly_rate, cp.effective_from, cp.effective_to,
			   cp.created_at, cp.updated_at, c.name, ro.name
		FROM client_pricing cp
		JOIN clients c ON c.id = cp.client_id
		JOIN roles ro ON ro.id = cp.role_id
		WHERE cp.id = $1
	`

	var p pricing.ClientPricing
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ClientID, &p.RoleID, &p.HourlyRate, &p.EffectiveFrom, &p.EffectiveTo,
		&p.CreatedAt, &p.UpdatedAt, &p.ClientName, &p.RoleName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pricing.ClientPricing{}, pricing.ErrPricingNotFound
		}
		return pricing.ClientPricing{}, fmt.Errorf("failed to get client pricing: %w", err)
	}

	return p, nil
}

func (r *pricingRepository) ListByClient(ctx context.Context, clientID string) ([]pricing.ClientPricing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cp.id, cp.client_id, cp.role_id, cp.hourly_rate, cp.effective_from, cp.effective_to,
			   cp.created_at, cp.updated_at, ro.name
		FROM client_pricing cp
		JOIN roles ro ON ro.id = cp.role_id
		WHERE cp.client_id = $1
		ORDER BY ro.name, cp.effective_from DESC
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client pricing: %w", err)
	}
	defer rows.Close()

	var result []pricing.ClientPricing
	for rows.Next() {
		var p pricing.ClientPricing
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.RoleID, &p.HourlyRate, &p.EffectiveFrom, &p.EffectiveTo,
			&p.CreatedAt, &p.UpdatedAt, &p.RoleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client pricing: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *pricingRepository) ListOverlapping(ctx context.Context, clientID string, periodStart, periodEnd time.Time) ([]pricing.ClientPricing, error) {
	q := GetQuerier(ctx, r.db)

	// Any overlap with the period qualifies, not strict containment.
	query := `
		SELECT cp.id, cp.client_id, cp.role_id, cp.hourly_rate, cp.effective_from, cp.effective_to,
			   cp.created_at, cp.updated_at, ro.name
		FROM client_pricing cp
		JOIN roles ro ON ro.id = cp.role_id
		WHERE cp.client_id = $1
		  AND cp.effective_from <= $3
		  AND (cp.effective_to IS NULL OR cp.effective_to >= $2)
		ORDER BY cp.effective_from DESC
	`

	rows, err := q.Query(ctx, query, clientID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping client pricing: %w", err)
	}
	defer rows.Close()

	var result []pricing.ClientPricing
	for rows.Next() {
		var p pricing.ClientPricing
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.RoleID, &p.HourlyRate, &p.EffectiveFrom, &p.EffectiveTo,
			&p.CreatedAt, &p.UpdatedAt, &p.RoleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client pricing: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *pricingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM client_pricing WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client pricing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pricing.ErrPricingNotFound
	}

	return nil
}
