package user

import "time"

// Role enum
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User - back-office account, not an employee record
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
