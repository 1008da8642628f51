package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/jackc/pgx/v5"
)

// ListAttendance returns attendance records, newest date first, optionally limited to one date.
func (r *Repository) ListAttendance(ctx context.Context, date *time.Time) ([]models.Attendance, error) {
	defer r.observe("list_attendance", time.Now())

	var (
		rows pgx.Rows
		err  error
	)

	if date != nil {
		query := `
			SELECT a.id, e.employee_id, a.date, a.status, a.created_at
			FROM attendance a
			JOIN employees e ON e.id = a.employee_id
			WHERE a.date = $1
			ORDER BY a.date DESC, a.created_at DESC;
		`
		rows, err = r.db.Query(ctx, query, *date)
	} else {
		query := `
			SELECT a.id, e.employee_id, a.date, a.status, a.created_at
			FROM attendance a
			JOIN employees e ON e.id = a.employee_id
			ORDER BY a.date DESC, a.created_at DESC;
		`
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return collectAttendance(rows)
}

// ListAttendanceByEmployee returns the history of one employee, newest date first.
func (r *Repository) ListAttendanceByEmployee(
	ctx context.Context,
	employee models.Employee,
) ([]models.Attendance, error) {
	defer r.observe("list_attendance_by_employee", time.Now())

	query := `
		SELECT a.id, e.employee_id, a.date, a.status, a.created_at
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC;
	`

	rows, err := r.db.Query(ctx, query, employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance of employee '%s': %w", employee.EmployeeID, err)
	}

	return collectAttendance(rows)
}

// UpsertAttendance records the status of an employee on a date in a single statement.
// The returned flag is true when a new row was inserted and false when an existing one was updated.
func (r *Repository) UpsertAttendance(
	ctx context.Context,
	employee models.Employee,
	date time.Time,
	status models.AttendanceStatus,
) (models.Attendance, bool, error) {
	defer r.observe("upsert_attendance", time.Now())

	// xmax is zero only for freshly inserted tuples
	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id, date, created_at, (xmax = 0) AS inserted;
	`

	record := models.Attendance{EmployeeID: employee.EmployeeID, Status: status}
	var inserted bool

	err := r.db.QueryRow(ctx, query, employee.ID, date, string(status)).
		Scan(&record.ID, &record.Date, &record.CreatedAt, &inserted)
	if err != nil {
		return models.Attendance{}, false, fmt.Errorf(
			"failed to upsert attendance of employee '%s': %w", employee.EmployeeID, err)
	}

	return record, inserted, nil
}

func collectAttendance(rows pgx.Rows) ([]models.Attendance, error) {
	defer rows.Close()

	records := make([]models.Attendance, 0)
	for rows.Next() {
		var (
			record models.Attendance
			status string
		)
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Date, &status, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		record.Status = models.AttendanceStatus(status)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}
