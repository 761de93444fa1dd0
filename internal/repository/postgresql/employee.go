package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/employee"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.email, e.employment_type,
		   e.start_date, e.end_date, e.salary_compensation, e.pay_frequency,
		   e.status, e.client_id, e.role_id, e.created_at, e.updated_at,
		   ro.name, ro.hourly_rate, c.name
	FROM employees e
	LEFT JOIN roles ro ON ro.id = e.role_id
	LEFT JOIN clients c ON c.id = e.client_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.EmploymentType,
		&e.StartDate, &e.EndDate, &e.SalaryCompensation, &e.PayFrequency,
		&e.Status, &e.ClientID, &e.RoleID, &e.CreatedAt, &e.UpdatedAt,
		&e.RoleName, &e.RoleHourlyRate, &e.ClientName,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, employment_type, start_date, end_date,
			salary_compensation, pay_frequency, status, client_id, role_id
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.EmploymentType, e.StartDate, e.EndDate,
		e.SalaryCompensation, e.PayFrequency, e.Status, e.ClientID, e.RoleID,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uq_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND e.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND e.client_id = $%d", argPos)
		args = append(args, *filter.ClientID)
		argPos++
	}
	if filter.RoleID != nil {
		query += fmt.Sprintf(" AND e.role_id = $%d", argPos)
		args = append(args, *filter.RoleID)
		argPos++
	}
	query += " ORDER BY e.last_name, e.first_name"

	return r.queryEmployees(ctx, q, query, args...)
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := employeeSelect + ` WHERE e.status = 'active' ORDER BY e.last_name, e.first_name`
	return r.queryEmployees(ctx, q, query)
}

func (r *employeeRepository) GetActiveByClientID(ctx context.Context, clientID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := employeeSelect + ` WHERE e.status = 'active' AND e.client_id = $1 ORDER BY e.last_name, e.first_name`
	return r.queryEmployees(ctx, q, query, clientID)
}

func (r *employeeRepository) queryEmployees(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) CountActiveByRoleID(ctx context.Context, roleID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE role_id = $1 AND status = 'active'`,
		roleID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by role: %w", err)
	}

	return count, nil
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, employment_type = $5,
			end_date = $6, salary_compensation = $7, pay_frequency = $8,
			status = $9, client_id = $10, role_id = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.EmploymentType,
		e.EndDate, e.SalaryCompensation, e.PayFrequency, e.Status, e.ClientID, e.RoleID,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uq_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *employeeRepository) SetStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) AddDocument(ctx context.Context, d employee.ComplianceDocument) (employee.ComplianceDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compliance_documents (id, employee_id, document_type, expires_on, notes)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, employee_id, document_type, expires_on, notes, created_at
	`

	var created employee.ComplianceDocument
	err := q.QueryRow(ctx, query, d.EmployeeID, d.DocumentType, d.ExpiresOn, d.Notes).Scan(
		&created.ID, &created.EmployeeID, &created.DocumentType, &created.ExpiresOn,
		&created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return employee.ComplianceDocument{}, fmt.Errorf("failed to add compliance document: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetDocumentsByEmployee(ctx context.Context, employeeID string) ([]employee.ComplianceDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.employee_id, d.document_type, d.expires_on, d.notes, d.created_at,
			   e.first_name || ' ' || e.last_name
		FROM compliance_documents d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.employee_id = $1
		ORDER BY d.created_at DESC
	`

	return r.queryDocuments(ctx, q, query, employeeID)
}

func (r *employeeRepository) GetExpiringDocuments(ctx context.Context, withinDays int) ([]employee.ComplianceDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.employee_id, d.document_type, d.expires_on, d.notes, d.created_at,
			   e.first_name || ' ' || e.last_name
		FROM compliance_documents d
		JOIN employees e ON e.id = d.employee_id
		WHERE e.status = 'active'
		  AND d.expires_on IS NOT NULL
		  AND d.expires_on <= CURRENT_DATE + $1 * INTERVAL '1 day'
		ORDER BY d.expires_on
	`

	return r.queryDocuments(ctx, q, query, withinDays)
}

func (r *employeeRepository) queryDocuments(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]employee.ComplianceDocument, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query compliance documents: %w", err)
	}
	defer rows.Close()

	var docs []employee.ComplianceDocument
	for rows.Next() {
		var d employee.ComplianceDocument
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.DocumentType, &d.ExpiresOn, &d.Notes, &d.CreatedAt,
			&d.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan compliance document: %w", err)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}
