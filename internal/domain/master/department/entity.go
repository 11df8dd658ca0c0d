package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	ManagerName   *string
	EmployeeCount int
}
