package user

import "time"

// User is an identity record. The HR core only needs it as a stable
// principal for stamping writes and linking employee profiles.
type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal identifies the acting user on a write operation. It is
// extracted from the verified token at the HTTP boundary and passed
// explicitly; services never read it from ambient state.
type Principal struct {
	UserID     string
	EmployeeID string
}
