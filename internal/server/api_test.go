package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/horae/internal/lib/apperr"
	"github.com/UnknownOlympus/horae/internal/lib/logger/sl"
	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/UnknownOlympus/horae/internal/server"
	mocks "github.com/UnknownOlympus/horae/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	handler    http.Handler
	employees  *mocks.EmployeeService
	attendance *mocks.AttendanceService
	dashboard  *mocks.DashboardService
	metrics    *metrics.Metrics
}

func newAPI(t *testing.T) apiFixture {
	t.Helper()

	fx := apiFixture{
		employees:  mocks.NewEmployeeService(t),
		attendance: mocks.NewAttendanceService(t),
		dashboard:  mocks.NewDashboardService(t),
		metrics:    metrics.NewMetrics(prometheus.NewRegistry()),
	}
	fx.handler = server.NewAPI(sl.Discard(), fx.employees, fx.attendance, fx.dashboard, fx.metrics).Routes()

	return fx
}

func (fx apiFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()

	fx.handler.ServeHTTP(rr, req)

	return rr
}

var annEmployee = models.Employee{
	ID:         1,
	EmployeeID: "EMP001",
	FullName:   "Ann",
	Email:      "ann@x.com",
	Department: "Eng",
	CreatedAt:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
}

const annJSON = `{"id":"EMP001","name":"Ann","email":"ann@x.com","department":"Eng","created_at":"2024-01-01T09:00:00Z"}`

func TestListEmployees(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("List", mock.Anything).Return([]models.Employee{annEmployee}, nil).Once()

	rr := fx.do(t, http.MethodGet, "/employees/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"success":true,"data":[`+annJSON+`]}`, rr.Body.String())
}

func TestListEmployees_EmptyIsArray(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("List", mock.Anything).Return([]models.Employee{}, nil).Once()

	rr := fx.do(t, http.MethodGet, "/employees", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	input := models.EmployeeInput{Name: "Ann", Email: "Ann@x.com", Department: "Eng"}
	fx.employees.On("Create", mock.Anything, input).Return(annEmployee, nil).Once()

	rr := fx.do(t, http.MethodPost, "/employees/", `{"name":"Ann","email":"Ann@x.com","department":"Eng"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"success":true,"data":`+annJSON+`}`, rr.Body.String())
}

func TestCreateEmployee_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing fields", apperr.Validation("Name, email, and department are required"), http.StatusBadRequest,
			"Name, email, and department are required"},
		{"email exists", apperr.Conflict("Email already exists"), http.StatusConflict, "Email already exists"},
		{"store failure", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := newAPI(t)
			fx.employees.On("Create", mock.Anything, mock.Anything).Return(models.Employee{}, tt.err).Once()

			rr := fx.do(t, http.MethodPost, "/employees/", `{"name":"Ann"}`)

			require.Equal(t, tt.code, rr.Code)
			require.JSONEq(t, `{"success":false,"message":"`+tt.message+`"}`, rr.Body.String())
		})
	}
}

func TestCreateEmployee_MalformedBody(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)

	rr := fx.do(t, http.MethodPost, "/employees/", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"success":false,"message":"Invalid request body"}`, rr.Body.String())
}

func TestGetEmployee(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("Get", mock.Anything, "EMP001").Return(annEmployee, nil).Once()
	fx.employees.On("Get", mock.Anything, "EMP404").Return(models.Employee{}, apperr.NotFound("Employee not found")).Once()

	rr := fx.do(t, http.MethodGet, "/employees/EMP001/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":`+annJSON+`}`, rr.Body.String())

	rr = fx.do(t, http.MethodGet, "/employees/EMP404", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"success":false,"message":"Employee not found"}`, rr.Body.String())
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	updated := annEmployee
	updated.Department = "Research"
	fx.employees.On("Update", mock.Anything, "EMP001", models.EmployeeInput{Department: "Research"}).
		Return(updated, nil).Once()

	rr := fx.do(t, http.MethodPut, "/employees/EMP001/", `{"department":"Research"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp server.Response[models.Employee]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Research", resp.Data.Department)
}

func TestUpdateEmployee_EmptyBody(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("Update", mock.Anything, "EMP001", models.EmployeeInput{}).Return(annEmployee, nil).Once()

	rr := fx.do(t, http.MethodPut, "/employees/EMP001/", "")

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateEmployee_Conflict(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("Update", mock.Anything, "EMP001", mock.Anything).
		Return(models.Employee{}, apperr.Conflict("Email already exists")).Once()

	rr := fx.do(t, http.MethodPut, "/employees/EMP001/", `{"email":"bo@x.com"}`)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("Delete", mock.Anything, "EMP001").Return(nil).Once()
	fx.employees.On("Delete", mock.Anything, "EMP404").Return(apperr.NotFound("Employee not found")).Once()

	rr := fx.do(t, http.MethodDelete, "/employees/EMP001/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t,
		`{"success":true,"message":"Employee deleted successfully","data":{"id":"EMP001"}}`, rr.Body.String())

	rr = fx.do(t, http.MethodDelete, "/employees/EMP404/", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListAttendance(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	record := models.Attendance{
		ID: 3, EmployeeID: "EMP001", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Status: models.StatusPresent,
	}
	fx.attendance.On("List", mock.Anything, "2024-01-01").Return([]models.Attendance{record}, nil).Once()
	fx.attendance.On("List", mock.Anything, "").Return([]models.Attendance{}, nil).Once()

	rr := fx.do(t, http.MethodGet, "/attendance/?date=2024-01-01", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t,
		`{"success":true,"data":[{"id":3,"employeeId":"EMP001","date":"2024-01-01","status":"Present"}]}`,
		rr.Body.String())

	rr = fx.do(t, http.MethodGet, "/attendance/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
}

func TestMarkAttendance(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	present := models.Attendance{ID: 1, EmployeeID: "EMP001", Date: day, Status: models.StatusPresent}
	absent := models.Attendance{ID: 1, EmployeeID: "EMP001", Date: day, Status: models.StatusAbsent}

	fx.attendance.On("Mark", mock.Anything,
		models.AttendanceInput{EmployeeID: "EMP001", Date: "2024-01-01", Status: "Present"}).
		Return(present, true, nil).Once()
	fx.attendance.On("Mark", mock.Anything,
		models.AttendanceInput{EmployeeID: "EMP001", Date: "2024-01-01", Status: "Absent"}).
		Return(absent, false, nil).Once()

	rr := fx.do(t, http.MethodPost, "/attendance/",
		`{"employeeId":"EMP001","date":"2024-01-01","status":"Present"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = fx.do(t, http.MethodPost, "/attendance/",
		`{"employeeId":"EMP001","date":"2024-01-01","status":"Absent"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t,
		`{"success":true,"data":{"id":1,"employeeId":"EMP001","date":"2024-01-01","status":"Absent"}}`,
		rr.Body.String())
}

func TestMarkAttendance_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid status", apperr.Validation(`Status must be either "Present" or "Absent"`), http.StatusBadRequest},
		{"unknown employee", apperr.NotFound("Employee not found or invalid date"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := newAPI(t)
			fx.attendance.On("Mark", mock.Anything, mock.Anything).
				Return(models.Attendance{}, false, tt.err).Once()

			rr := fx.do(t, http.MethodPost, "/attendance/", `{"employeeId":"EMP001"}`)

			require.Equal(t, tt.code, rr.Code)
			var resp server.Response[struct{}]
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.err.Error(), resp.Message)
		})
	}
}

func TestListEmployeeAttendance(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.attendance.On("ListByEmployee", mock.Anything, "EMP001").Return([]models.Attendance{}, nil).Once()
	fx.attendance.On("ListByEmployee", mock.Anything, "EMP404").
		Return(nil, apperr.NotFound("Employee not found")).Once()

	rr := fx.do(t, http.MethodGet, "/attendance/EMP001/", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = fx.do(t, http.MethodGet, "/attendance/EMP404/", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"success":false,"message":"Employee not found"}`, rr.Body.String())
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.dashboard.On("Stats", mock.Anything).Return(models.DashboardStats{
		TotalEmployees:         2,
		AbsentToday:            1,
		TotalDepartments:       1,
		WeeklyTrend:            []models.DayTrend{{Day: "Mon"}},
		DepartmentDistribution: []models.DepartmentCount{{Name: "Eng", Value: 2}},
		TodayAttendanceStatus:  []models.StatusCount{{Name: "Present"}, {Name: "Absent", Count: 1}},
	}, nil).Once()

	rr := fx.do(t, http.MethodGet, "/dashboard/stats/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":{
		"totalEmployees":2,"presentToday":0,"absentToday":1,"attendanceRate":0,"totalDepartments":1,
		"weeklyTrend":[{"day":"Mon","present":0}],
		"departmentDistribution":[{"name":"Eng","value":2}],
		"todayAttendanceStatus":[{"name":"Present","count":0},{"name":"Absent","count":1}]
	}}`, rr.Body.String())
}

func TestUnknownRouteAndMethod(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)

	rr := fx.do(t, http.MethodGet, "/payroll/", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"success":false,"message":"Not found"}`, rr.Body.String())

	rr = fx.do(t, http.MethodPatch, "/employees/EMP001/", "")
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRequestsAreObserved(t *testing.T) {
	t.Parallel()

	fx := newAPI(t)
	fx.employees.On("Get", mock.Anything, "EMP404").Return(models.Employee{}, apperr.NotFound("Employee not found")).Once()

	_ = fx.do(t, http.MethodGet, "/employees/EMP404/", "")

	counter := fx.metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/employees/{id}", "404")
	assert.InDelta(t, 1, testutil.ToFloat64(counter), 0)
}
