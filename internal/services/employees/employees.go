package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/horae/internal/lib/apperr"
	"github.com/UnknownOlympus/horae/internal/lib/logger/sl"
	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/UnknownOlympus/horae/internal/repository"
	"github.com/jackc/pgx/v5"
)

const (
	idPrefix = "EMP"
	firstID  = "EMP001"

	msgRequired    = "Name, email, and department are required"
	msgEmailExists = "Email already exists"
	msgNotFound    = "Employee not found"
)

// Staff manages the employee roster.
type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// List returns every employee, newest first.
func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// Create validates the input, enforces email uniqueness and stores a new employee
// with the next free EMP### code.
func (s *Staff) Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	email := strings.ToLower(input.Email)
	if input.Name == "" || email == "" || input.Department == "" {
		return models.Employee{}, apperr.Validation(msgRequired)
	}

	taken, err := s.repo.EmailTaken(ctx, email, "")
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		log.DebugContext(ctx, "email is already used", "email", email)
		return models.Employee{}, apperr.Conflict(msgEmailExists)
	}

	employee, err := s.repo.CreateEmployee(ctx, models.Employee{
		FullName:   input.Name,
		Email:      email,
		Department: input.Department,
	}, NextEmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			log.WarnContext(ctx, "employee insert hit a unique constraint", sl.Err(err))
			return models.Employee{}, apperr.Conflict(msgEmailExists)
		}
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.metrics.EmployeesCreated.Inc()
	log.InfoContext(ctx, "employee created", "employee_id", employee.EmployeeID)

	return employee, nil
}

// Get returns one employee by its public code.
func (s *Staff) Get(ctx context.Context, employeeID string) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, apperr.NotFound(msgNotFound)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee '%s': %w", employeeID, err)
	}

	return employee, nil
}

// Update overwrites the supplied, non-empty fields of an employee.
// The employee code and creation time never change.
func (s *Staff) Update(ctx context.Context, employeeID string, input models.EmployeeInput) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	employee, err := s.Get(ctx, employeeID)
	if err != nil {
		return models.Employee{}, err
	}

	if input.Email != "" {
		email := strings.ToLower(input.Email)
		taken, takenErr := s.repo.EmailTaken(ctx, email, employeeID)
		if takenErr != nil {
			return models.Employee{}, fmt.Errorf("failed to check email: %w", takenErr)
		}
		if taken {
			return models.Employee{}, apperr.Conflict(msgEmailExists)
		}
		employee.Email = email
	}
	if input.Name != "" {
		employee.FullName = input.Name
	}
	if input.Department != "" {
		employee.Department = input.Department
	}

	if err = s.repo.UpdateEmployee(ctx, employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			return models.Employee{}, apperr.Conflict(msgEmailExists)
		case errors.Is(err, pgx.ErrNoRows):
			return models.Employee{}, apperr.NotFound(msgNotFound)
		default:
			return models.Employee{}, fmt.Errorf("failed to update employee '%s': %w", employeeID, err)
		}
	}

	log.InfoContext(ctx, "employee updated", "employee_id", employeeID)

	return employee, nil
}

// Delete removes an employee together with its attendance history.
func (s *Staff) Delete(ctx context.Context, employeeID string) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(msgNotFound)
		}
		return fmt.Errorf("failed to delete employee '%s': %w", employeeID, err)
	}

	s.metrics.EmployeesDeleted.Inc()
	log.InfoContext(ctx, "employee deleted", "employee_id", employeeID)

	return nil
}

// Purge wipes the roster and all attendance. Used by the seeder.
func (s *Staff) Purge(ctx context.Context) error {
	if err := s.repo.PurgeEmployees(ctx); err != nil {
		return fmt.Errorf("failed to purge roster: %w", err)
	}

	return nil
}

// NextEmployeeID derives the code following lastID: the numeric suffix is incremented and
// zero padded to three digits. An empty or unparsable lastID starts over at EMP001.
func NextEmployeeID(lastID string) string {
	if lastID == "" {
		return firstID
	}

	number, err := strconv.Atoi(strings.TrimPrefix(lastID, idPrefix))
	if err != nil || number < 0 {
		return firstID
	}

	return fmt.Sprintf("%s%03d", idPrefix, number+1)
}
