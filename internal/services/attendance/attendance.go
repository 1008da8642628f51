package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/horae/internal/lib/apperr"
	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/UnknownOlympus/horae/internal/repository"
	"github.com/jackc/pgx/v5"
)

const (
	msgRequired        = "Employee ID, date, and status are required"
	msgInvalidStatus   = `Status must be either "Present" or "Absent"`
	msgEmployeeOrDate  = "Employee not found or invalid date"
	msgEmployeeMissing = "Employee not found"
)

// Register is the daily attendance log.
type Register struct {
	log       *slog.Logger
	repo      repository.AttendanceRepoIface
	employees repository.EmployeeRepoIface
	metrics   *metrics.Metrics
}

func NewRegister(
	log *slog.Logger,
	repo repository.AttendanceRepoIface,
	employees repository.EmployeeRepoIface,
	metrics *metrics.Metrics,
) *Register {
	return &Register{log: log, repo: repo, employees: employees, metrics: metrics}
}

func (r *Register) initLogger(opn string) *slog.Logger {
	return r.log.With(
		slog.String("op", opn),
		slog.String("division", "attendance"),
	)
}

// List returns the attendance log. A date filter that is not YYYY-MM-DD is ignored.
func (r *Register) List(ctx context.Context, date string) ([]models.Attendance, error) {
	const opn = "Attendance.List"
	log := r.initLogger(opn)

	var filter *time.Time
	if date != "" {
		parsed, err := ParseDate(date)
		if err != nil {
			log.DebugContext(ctx, "ignoring malformed date filter", "date", date)
		} else {
			filter = &parsed
		}
	}

	records, err := r.repo.ListAttendance(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return records, nil
}

// Mark records the status of an employee on a date, creating the record or overwriting the
// status of the existing one. The flag reports whether a new record was created.
func (r *Register) Mark(ctx context.Context, input models.AttendanceInput) (models.Attendance, bool, error) {
	const opn = "Attendance.Mark"
	log := r.initLogger(opn)

	if input.EmployeeID == "" || input.Date == "" || input.Status == "" {
		return models.Attendance{}, false, apperr.Validation(msgRequired)
	}

	status := models.AttendanceStatus(input.Status)
	if !status.Valid() {
		return models.Attendance{}, false, apperr.Validation(msgInvalidStatus)
	}

	employee, err := r.employees.GetEmployeeByID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Attendance{}, false, apperr.NotFound(msgEmployeeOrDate)
		}
		return models.Attendance{}, false, fmt.Errorf("failed to get employee '%s': %w", input.EmployeeID, err)
	}

	date, err := ParseDate(input.Date)
	if err != nil {
		return models.Attendance{}, false, apperr.NotFound(msgEmployeeOrDate)
	}

	record, created, err := r.repo.UpsertAttendance(ctx, employee, date, status)
	if err != nil {
		return models.Attendance{}, false, fmt.Errorf("failed to mark attendance: %w", err)
	}

	result := "updated"
	if created {
		result = "created"
	}
	r.metrics.AttendanceMarked.WithLabelValues(result).Inc()
	log.InfoContext(ctx, "attendance marked",
		"employee_id", employee.EmployeeID, "date", input.Date, "status", status, "result", result)

	return record, created, nil
}

// ListByEmployee returns the attendance history of one employee, newest date first.
func (r *Register) ListByEmployee(ctx context.Context, employeeID string) ([]models.Attendance, error) {
	employee, err := r.employees.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(msgEmployeeMissing)
		}
		return nil, fmt.Errorf("failed to get employee '%s': %w", employeeID, err)
	}

	records, err := r.repo.ListAttendanceByEmployee(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance of '%s': %w", employeeID, err)
	}

	return records, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return date, nil
}
