package models

import "time"

// Employee represents a person tracked for attendance purposes.
// ID is the internal database key; EmployeeID is the public `EMP###` code.
type Employee struct {
	ID         int64     `json:"-"`
	EmployeeID string    `json:"id"`
	FullName   string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeInput carries the client supplied fields for create and update requests.
// Empty fields are treated as absent.
type EmployeeInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
