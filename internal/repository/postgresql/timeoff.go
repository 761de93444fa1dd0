package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/timeoff"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type timeOffRepository struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.TimeOffRepository {
	return &timeOffRepository{db: db}
}

func (r *timeOffRepository) Create(ctx context.Context, t timeoff.TimeOff) (timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_requests (
			id, employee_id, leave_type, start_date, end_date, days_count, reason, status
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, leave_type, start_date, end_date, days_count, reason,
			status, decided_at, decided_by, created_at, updated_at
	`

	var created timeoff.TimeOff
	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.LeaveType, t.StartDate, t.EndDate, t.DaysCount, t.Reason, t.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.LeaveType, &created.StartDate, &created.EndDate,
		&created.DaysCount, &created.Reason, &created.Status, &created.DecidedAt, &created.DecidedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return timeoff.TimeOff{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return created, nil
}

func (r *timeOffRepository) GetByID(ctx context.Context, id string) (timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.leave_type, t.start_date, t.end_date, t.days_count,
			   t.reason, t.status, t.decided_at, t.decided_by, t.created_at, t.updated_at,
			   e.first_name || ' ' || e.last_name
		FROM time_off_requests t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`

	var t timeoff.TimeOff
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.EmployeeID, &t.LeaveType, &t.StartDate, &t.EndDate, &t.DaysCount,
		&t.Reason, &t.Status, &t.DecidedAt, &t.DecidedBy, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeoff.TimeOff{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOff{}, fmt.Errorf("failed to get time off request: %w", err)
	}

	return t, nil
}

func (r *timeOffRepository) List(ctx context.Context, filter timeoff.TimeOffFilter) ([]timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.leave_type, t.start_date, t.end_date, t.days_count,
			   t.reason, t.status, t.decided_at, t.decided_by, t.created_at, t.updated_at,
			   e.first_name || ' ' || e.last_name
		FROM time_off_requests t
		JOIN employees e ON e.id = t.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND t.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	query += " ORDER BY t.start_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off requests: %w", err)
	}
	defer rows.Close()

	var requests []timeoff.TimeOff
	for rows.Next() {
		var t timeoff.TimeOff
		if err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.LeaveType, &t.StartDate, &t.EndDate, &t.DaysCount,
			&t.Reason, &t.Status, &t.DecidedAt, &t.DecidedBy, &t.CreatedAt, &t.UpdatedAt,
			&t.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time off request: %w", err)
		}
		requests = append(requests, t)
	}

	return requests, rows.Err()
}

func (r *timeOffRepository) UpdateStatus(ctx context.Context, id string, status timeoff.Status, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE time_off_requests
		 SET status = $2, decided_at = NOW(), decided_by = $3, updated_at = NOW()
		 WHERE id = $1`,
		id, status, decidedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update time off status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeoff.ErrTimeOffNotFound
	}

	return nil
}
