package model

import "time"

// Role values stored in users.role. Employees check in and out;
// managers additionally see aggregate views and exports.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User represents a row in the `users` table. PasswordHash is never
// serialized; handlers build their own response types where needed.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	EmployeeID   string    `json:"employeeId"`
	Department   string    `json:"department"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
