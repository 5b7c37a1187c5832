package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}
