package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/atlashr/employee-api/internal/models"
)

// observe records the duration of a single query when metrics are configured.
func (r *Repository) observe(queryType string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// EnsureSchema creates the employees table if it does not exist yet.
// Safe to call on every startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	defer r.observe("ensure_schema", time.Now())

	query := `
		CREATE TABLE IF NOT EXISTS employees (
			id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL,
			department TEXT NOT NULL
		);
	`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to ensure employees table: %w", err)
	}

	return nil
}

// ListEmployees returns up to limit employees ordered by id, skipping the first skip rows.
func (r *Repository) ListEmployees(ctx context.Context, skip, limit int) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `SELECT id, name, department FROM employees ORDER BY id ASC OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(&employee.ID, &employee.Name, &employee.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
// A missing row is reported as ErrEmployeeNotFound, never as a raw pgx error.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	var result models.Employee

	query := `SELECT id, name, department FROM employees WHERE id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(&result.ID, &result.Name, &result.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// CreateEmployee inserts a new employee row and returns the stored record
// with its server-assigned id. Client-supplied ids are never consulted.
func (r *Repository) CreateEmployee(ctx context.Context, name, department string) (models.Employee, error) {
	defer r.observe("create_employee", time.Now())

	var result models.Employee

	query := `INSERT INTO employees (name, department) VALUES ($1, $2) RETURNING id, name, department`

	err := r.db.QueryRow(ctx, query, name, department).Scan(&result.ID, &result.Name, &result.Department)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// UpdateEmployeeColumn sets a single column for the given employee.
// The column constant selects a fixed statement, so no identifier is ever interpolated.
// Returns false when the id matched no row.
func (r *Repository) UpdateEmployeeColumn(
	ctx context.Context,
	identifier int,
	column Column,
	value string,
) (bool, error) {
	defer r.observe("update_employee_column", time.Now())

	var query string
	switch column {
	case ColumnName:
		query = `UPDATE employees SET name = $2 WHERE id = $1`
	case ColumnDepartment:
		query = `UPDATE employees SET department = $2 WHERE id = $1`
	default:
		return false, fmt.Errorf("unknown employee column: %q", column)
	}

	tag, err := r.db.Exec(ctx, query, identifier, value)
	if err != nil {
		return false, fmt.Errorf("failed to update employee data: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteEmployee removes the employee with the given id.
// Returns false when the id matched no row.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int) (bool, error) {
	defer r.observe("delete_employee", time.Now())

	query := `DELETE FROM employees WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
