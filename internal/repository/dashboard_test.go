package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/UnknownOlympus/horae/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countAttendanceQuery = `
	SELECT status, COUNT(*)
	FROM attendance
	WHERE date = $1
	GROUP BY status;
`

const departmentDistributionQuery = `
	SELECT department, COUNT(*)
	FROM employees
	GROUP BY department
	ORDER BY department;
`

func TestCountEmployees(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	repo := repository.NewDashboardRepository(mock, newMetrics())
	total, err := repo.CountEmployees(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees")).WillReturnError(assert.AnError)

	repo := repository.NewDashboardRepository(mock, newMetrics())
	_, err := repo.CountEmployees(context.Background())

	require.EqualError(t, err, "failed to count employees: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAttendanceByStatus(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(countAttendanceQuery)).
		WithArgs(day(1)).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow("Present", 3).
			AddRow("Absent", 1))

	repo := repository.NewDashboardRepository(mock, newMetrics())
	counts, err := repo.CountAttendanceByStatus(context.Background(), day(1))

	require.NoError(t, err)
	assert.Equal(t, map[models.AttendanceStatus]int{
		models.StatusPresent: 3,
		models.StatusAbsent:  1,
	}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentDistribution(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(departmentDistributionQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"department", "count"}).
			AddRow("Eng", 2).
			AddRow("Sales", 1))

	repo := repository.NewDashboardRepository(mock, newMetrics())
	distribution, err := repo.DepartmentDistribution(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.DepartmentCount{{Name: "Eng", Value: 2}, {Name: "Sales", Value: 1}}, distribution)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentDistribution_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(departmentDistributionQuery)).WillReturnError(assert.AnError)

	repo := repository.NewDashboardRepository(mock, newMetrics())
	_, err := repo.DepartmentDistribution(context.Background())

	require.EqualError(t, err, "failed to get department distribution: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
