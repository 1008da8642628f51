package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation is returned when a write hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (models.Employee, error)
	EmailTaken(ctx context.Context, email, excludeEmployeeID string) (bool, error)
	CreateEmployee(ctx context.Context, employee models.Employee, nextID func(lastID string) string) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	PurgeEmployees(ctx context.Context) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// AttendanceRepoIface represents the interface for the daily attendance log.
type AttendanceRepoIface interface {
	ListAttendance(ctx context.Context, date *time.Time) ([]models.Attendance, error)
	ListAttendanceByEmployee(ctx context.Context, employee models.Employee) ([]models.Attendance, error)
	UpsertAttendance(
		ctx context.Context, employee models.Employee, date time.Time, status models.AttendanceStatus,
	) (models.Attendance, bool, error)
}

func NewAttendanceRepository(db Database, metrics *metrics.Metrics) AttendanceRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// DashboardRepoIface represents the aggregate queries behind the dashboard.
type DashboardRepoIface interface {
	CountEmployees(ctx context.Context) (int, error)
	CountAttendanceByStatus(ctx context.Context, date time.Time) (map[models.AttendanceStatus]int, error)
	DepartmentDistribution(ctx context.Context) ([]models.DepartmentCount, error)
}

func NewDashboardRepository(db Database, metrics *metrics.Metrics) DashboardRepoIface {
	return &Repository{db: db, metrics: metrics}
}

func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
