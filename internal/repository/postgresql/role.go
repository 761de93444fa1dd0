package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/role"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type roleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (id, name, hourly_rate, description)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id, name, hourly_rate, description, created_at, updated_at
	`

	var created role.Role
	err := q.QueryRow(ctx, query, ro.Name, ro.HourlyRate, ro.Description).Scan(
		&created.ID, &created.Name, &created.HourlyRate, &created.Description,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_roles_name") {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return created, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, hourly_rate, description, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var ro role.Role
	err := q.QueryRow(ctx, query, id).Scan(
		&ro.ID, &ro.Name, &ro.HourlyRate, &ro.Description, &ro.CreatedAt, &ro.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}

	return ro, nil
}

func (r *roleRepository) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, hourly_rate, description, created_at, updated_at
		FROM roles
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var ro role.Role
		if err := rows.Scan(
			&ro.ID, &ro.Name, &ro.HourlyRate, &ro.Description, &ro.CreatedAt, &ro.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, ro)
	}

	return roles, rows.Err()
}

func (r *roleRepository) Update(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = $2, hourly_rate = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, hourly_rate, description, created_at, updated_at
	`

	var updated role.Role
	err := q.QueryRow(ctx, query, ro.ID, ro.Name, ro.HourlyRate, ro.Description).Scan(
		&updated.ID, &updated.Name, &updated.HourlyRate, &updated.Description,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.Role{}, role.ErrRoleNotFound
		}
		if strings.Contains(err.Error(), "uq_roles_name") {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, fmt.Errorf("failed to update role: %w", err)
	}

	return updated, nil
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return role.ErrRoleInUse
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}
