package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/horae/internal/models"
)

// CountEmployees returns the roster size.
func (r *Repository) CountEmployees(ctx context.Context) (int, error) {
	var total int

	defer r.observe("count_employees", time.Now())

	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// CountAttendanceByStatus groups the attendance records of a date by status.
// Statuses without records are absent from the map.
func (r *Repository) CountAttendanceByStatus(
	ctx context.Context,
	date time.Time,
) (map[models.AttendanceStatus]int, error) {
	defer r.observe("count_attendance_by_status", time.Now())

	query := `
		SELECT status, COUNT(*)
		FROM attendance
		WHERE date = $1
		GROUP BY status;
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.AttendanceStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[models.AttendanceStatus(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance counts: %w", err)
	}

	return counts, nil
}

// DepartmentDistribution returns the headcount of every department, ordered by name.
func (r *Repository) DepartmentDistribution(ctx context.Context) ([]models.DepartmentCount, error) {
	defer r.observe("department_distribution", time.Now())

	query := `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY department;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department distribution: %w", err)
	}
	defer rows.Close()

	distribution := make([]models.DepartmentCount, 0)
	for rows.Next() {
		var department models.DepartmentCount
		if err = rows.Scan(&department.Name, &department.Value); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		distribution = append(distribution, department)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return distribution, nil
}
