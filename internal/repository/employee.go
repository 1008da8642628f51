package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/jackc/pgx/v5"
)

// employeeIDLockKey is the advisory lock serializing employee code generation.
const employeeIDLockKey int64 = 0x686f726165

// ListEmployees returns the whole roster, newest first.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(&employee.ID, &employee.EmployeeID, &employee.FullName, &employee.Email,
			&employee.Department, &employee.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their public code.
// It returns an error wrapping pgx.ErrNoRows when the employee does not exist.
func (r *Repository) GetEmployeeByID(ctx context.Context, employeeID string) (models.Employee, error) {
	var result models.Employee

	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT id, employee_id, full_name, email, department, created_at FROM employees WHERE employee_id=$1`

	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&result.ID, &result.EmployeeID, &result.FullName, &result.Email, &result.Department, &result.CreatedAt)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// EmailTaken reports whether an employee other than excludeEmployeeID already uses the email.
// Pass an empty excludeEmployeeID to check against the whole roster.
func (r *Repository) EmailTaken(ctx context.Context, email, excludeEmployeeID string) (bool, error) {
	var taken bool

	defer r.observe("email_taken", time.Now())

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND employee_id <> $2)`

	if err := r.db.QueryRow(ctx, query, email, excludeEmployeeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}

	return taken, nil
}

// CreateEmployee inserts a new employee. The public code is produced by nextID from the
// greatest existing code while an advisory transaction lock is held, so concurrent creators
// never compute the same code.
func (r *Repository) CreateEmployee(
	ctx context.Context,
	employee models.Employee,
	nextID func(lastID string) string,
) (models.Employee, error) {
	defer r.observe("create_employee", time.Now())

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op once committed

	if _, err = tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", employeeIDLockKey); err != nil {
		return models.Employee{}, fmt.Errorf("failed to acquire employee id lock: %w", err)
	}

	// longer codes are numerically greater: EMP1000 > EMP999
	lastQuery := `
		SELECT employee_id FROM employees
		ORDER BY LENGTH(employee_id) DESC, employee_id DESC
		LIMIT 1;
	`
	var lastID string
	err = tx.QueryRow(ctx, lastQuery).Scan(&lastID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, fmt.Errorf("failed to get last employee id: %w", err)
	}

	employee.EmployeeID = nextID(lastID)

	insertQuery := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, insertQuery, employee.EmployeeID, employee.FullName, employee.Email, employee.Department).
		Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Employee{}, fmt.Errorf("failed to save employee: %w", ErrUniqueViolation)
		}
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return models.Employee{}, fmt.Errorf("failed to commit employee: %w", err)
	}

	return employee, nil
}

// UpdateEmployee overwrites the mutable fields of an employee identified by its public code.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	defer r.observe("update_employee", time.Now())

	query := `
		UPDATE employees
		SET full_name = $2, email = $3, department = $4
		WHERE employee_id = $1;
	`

	tag, err := r.db.Exec(ctx, query, employee.EmployeeID, employee.FullName, employee.Email, employee.Department)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to update employee data: %w", ErrUniqueViolation)
		}
		return fmt.Errorf("failed to update employee data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update employee data: %w", pgx.ErrNoRows)
	}

	return nil
}

// DeleteEmployee removes an employee; attendance rows go with it through ON DELETE CASCADE.
func (r *Repository) DeleteEmployee(ctx context.Context, employeeID string) error {
	defer r.observe("delete_employee", time.Now())

	tag, err := r.db.Exec(ctx, "DELETE FROM employees WHERE employee_id = $1", employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete employee: %w", pgx.ErrNoRows)
	}

	return nil
}

// PurgeEmployees removes every employee and attendance record.
func (r *Repository) PurgeEmployees(ctx context.Context) error {
	defer r.observe("purge_employees", time.Now())

	if _, err := r.db.Exec(ctx, "TRUNCATE employees RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to purge employees: %w", err)
	}

	return nil
}
