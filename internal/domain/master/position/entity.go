package position

import "time"

type Position struct {
	ID           string
	Title        string
	DepartmentID string
	Description  string
	MinSalary    *float64
	MaxSalary    *float64
	Requirements string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	DepartmentName *string
}
