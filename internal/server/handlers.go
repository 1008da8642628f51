package server

import (
	"net/http"

	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/go-chi/chi/v5"
)

// deletedEmployee is the payload of a successful delete.
type deletedEmployee struct {
	ID string `json:"id"`
}

func (a *API) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := a.employees.List(r.Context())
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusOK, OK(employees))
}

func (a *API) createEmployee(w http.ResponseWriter, r *http.Request) {
	var input models.EmployeeInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, a.log, err)
		return
	}

	employee, err := a.employees.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusCreated, OK(employee))
}

func (a *API) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := a.employees.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusOK, OK(employee))
}

func (a *API) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var input models.EmployeeInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, a.log, err)
		return
	}

	employee, err := a.employees.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusOK, OK(employee))
}

func (a *API) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if err := a.employees.Delete(r.Context(), employeeID); err != nil {
		writeError(w, r, a.log, err)
		return
	}

	resp := OK(deletedEmployee{ID: employeeID})
	resp.Message = "Employee deleted successfully"
	writeJSON(w, a.log, http.StatusOK, resp)
}

func (a *API) listAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendance.List(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusOK, OK(records))
}

func (a *API) markAttendance(w http.ResponseWriter, r *http.Request) {
	var input models.AttendanceInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, a.log, err)
		return
	}

	record, created, err := a.attendance.Mark(r.Context(), input)
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, a.log, status, OK(record))
}

func (a *API) listEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendance.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusOK, OK(records))
}

func (a *API) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	writeJSON(w, a.log, http.StatusOK, OK(stats))
}
