package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (id, name, contact_name, contact_email, is_active)
		VALUES (gen_random_uuid(), $1, $2, $3, true)
		RETURNING id, name, contact_name, contact_email, is_active, created_at, updated_at
	`

	var created client.Client
	err := q.QueryRow(ctx, query, c.Name, c.ContactName, c.ContactEmail).Scan(
		&created.ID, &created.Name, &created.ContactName, &created.ContactEmail,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_clients_name") {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_name, contact_email, is_active, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var c client.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ContactName, &c.ContactEmail, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_name, contact_email, is_active, created_at, updated_at
		FROM clients
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ContactName, &c.ContactEmail, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $2, contact_name = $3, contact_email = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, contact_name, contact_email, is_active, created_at, updated_at
	`

	var updated client.Client
	err := q.QueryRow(ctx, query, c.ID, c.Name, c.ContactName, c.ContactEmail, c.IsActive).Scan(
		&updated.ID, &updated.Name, &updated.ContactName, &updated.ContactEmail,
		&updated.IsActive, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return updated, nil
}
