package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/horae/internal/lib/apperr"
	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// EmployeeService manages the employee roster.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error)
	Get(ctx context.Context, employeeID string) (models.Employee, error)
	Update(ctx context.Context, employeeID string, input models.EmployeeInput) (models.Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

// AttendanceService manages the daily attendance log.
type AttendanceService interface {
	List(ctx context.Context, date string) ([]models.Attendance, error)
	Mark(ctx context.Context, input models.AttendanceInput) (models.Attendance, bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.Attendance, error)
}

// DashboardService computes summary statistics.
type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

// API serves the JSON endpoints.
type API struct {
	log        *slog.Logger
	employees  EmployeeService
	attendance AttendanceService
	dashboard  DashboardService
	metrics    *metrics.Metrics
}

func NewAPI(
	log *slog.Logger,
	employees EmployeeService,
	attendance AttendanceService,
	dashboard DashboardService,
	metrics *metrics.Metrics,
) *API {
	return &API{
		log:        log.With(slog.String("division", "api")),
		employees:  employees,
		attendance: attendance,
		dashboard:  dashboard,
		metrics:    metrics,
	}
}

// Routes builds the router. Trailing slashes are optional on every path.
func (a *API) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(a.observe)
	router.Use(middleware.Recoverer)

	router.Route("/employees", func(r chi.Router) {
		r.Get("/", a.listEmployees)
		r.Post("/", a.createEmployee)
		r.Get("/{id}", a.getEmployee)
		r.Put("/{id}", a.updateEmployee)
		r.Delete("/{id}", a.deleteEmployee)
	})

	router.Route("/attendance", func(r chi.Router) {
		r.Get("/", a.listAttendance)
		r.Post("/", a.markAttendance)
		r.Get("/{employeeID}", a.listEmployeeAttendance)
	})

	router.Get("/dashboard/stats", a.dashboardStats)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, a.log, http.StatusNotFound, Fail("Not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, a.log, http.StatusMethodNotAllowed, Fail("Method not allowed"))
	})

	return router
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(req *http.Request, dst any) error {
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Validation("Invalid request body")
	}
	return nil
}
