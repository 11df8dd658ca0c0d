package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "ACTIVE"
	StatusInactive   EmploymentStatus = "INACTIVE"
	StatusTerminated EmploymentStatus = "TERMINATED"
	StatusOnLeave    EmploymentStatus = "ON_LEAVE"
	StatusProbation  EmploymentStatus = "PROBATION"
)

var EmploymentStatuses = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusTerminated),
	string(StatusOnLeave),
	string(StatusProbation),
}

var Genders = []string{"M", "F", "O", "P"}

var MaritalStatuses = []string{"SINGLE", "MARRIED", "DIVORCED", "WIDOWED", "SEPARATED"}

type Employee struct {
	ID         string
	EmployeeID string
	UserID     *string

	FirstName     string
	LastName      string
	MiddleName    string
	DateOfBirth   *time.Time
	Gender        string
	MaritalStatus string
	Nationality   string

	PersonalEmail                string
	PhoneNumber                  string
	EmergencyContactName         string
	EmergencyContactPhone        string
	EmergencyContactRelationship string

	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string

	EmployeePhoto     *string
	DepartmentID      *string
	PositionID        *string
	DirectManagerID   *string
	HireDate          time.Time
	EmploymentStatus  EmploymentStatus
	TerminationDate   *time.Time
	TerminationReason string

	Salary         *float64
	SalaryCurrency string

	IsActive  bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	DepartmentName *string
	PositionTitle  *string
	ManagerName    *string
}

// NewEmployeeID generates a badge number: fixed prefix plus the first
// eight characters of a random UUID, uppercased. Assigned once at
// create and never regenerated.
func NewEmployeeID() string {
	return "EMP" + strings.ToUpper(uuid.NewString()[:8])
}

// FullName joins first, middle and last name, skipping the middle
// name when it is empty.
func (e Employee) FullName() string {
	if e.MiddleName != "" {
		return e.FirstName + " " + e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// AgeAt returns completed years since date of birth as of today, or
// nil when no birth date is recorded.
func (e Employee) AgeAt(today time.Time) *int {
	if e.DateOfBirth == nil {
		return nil
	}
	age := yearsBetween(*e.DateOfBirth, today)
	return &age
}

// YearsOfServiceAt returns completed years since hire date as of
// today, zero when the hire date is unset.
func (e Employee) YearsOfServiceAt(today time.Time) int {
	if e.HireDate.IsZero() {
		return 0
	}
	return yearsBetween(e.HireDate, today)
}

// yearsBetween counts completed years from start to end, subtracting
// one when end's month/day falls before start's month/day.
func yearsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	if end.Month() < start.Month() ||
		(end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}
