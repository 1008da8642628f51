package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire and query format of attendance dates.
const DateLayout = "2006-01-02"

// AttendanceStatus is the daily status of an employee.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether the status is one of the known values.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is one (employee, calendar date) -> status fact.
type Attendance struct {
	ID         int64
	EmployeeID string // public code of the owning employee
	Date       time.Time
	Status     AttendanceStatus
	CreatedAt  time.Time
}

type attendanceJSON struct {
	ID         int64            `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

// MarshalJSON renders the record with its date in YYYY-MM-DD form.
func (a Attendance) MarshalJSON() ([]byte, error) {
	return json.Marshal(attendanceJSON{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(DateLayout),
		Status:     a.Status,
	})
}

// AttendanceInput is the body of a mark attendance request.
type AttendanceInput struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}
