package employee

import (
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID *string `json:"user_id"`

	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	MiddleName    string  `json:"middle_name"`
	DateOfBirth   *string `json:"date_of_birth"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"marital_status"`
	Nationality   string  `json:"nationality"`

	PersonalEmail                string `json:"personal_email"`
	PhoneNumber                  string `json:"phone_number"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`

	DepartmentID     *string `json:"department_id"`
	PositionID       *string `json:"position_id"`
	DirectManagerID  *string `json:"direct_manager_id"`
	HireDate         string  `json:"hire_date"`
	EmploymentStatus string  `json:"employment_status"`

	Salary         *float64 `json:"salary"`
	SalaryCurrency string   `json:"salary_currency"`

	Notes string `json:"notes"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Gender != "" && !validator.IsInSlice(r.Gender, Genders) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of M, F, O, P",
		})
	}

	if r.MaritalStatus != "" && !validator.IsInSlice(r.MaritalStatus, MaritalStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "marital_status",
			Message: "invalid marital_status",
		})
	}

	if r.PersonalEmail != "" && !validator.IsValidEmail(r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "personal_email must be a valid email address",
		})
	}

	if r.PhoneNumber != "" && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid phone number",
		})
	}

	if r.HireDate != "" {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EmploymentStatus != "" && !validator.IsInSlice(r.EmploymentStatus, EmploymentStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "invalid employment_status",
		})
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if r.SalaryCurrency != "" && !validator.IsValidCurrencyCode(r.SalaryCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_currency",
			Message: "salary_currency must be a three-letter currency code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries the mutable fields. The badge number
// (employee_id) is deliberately absent: it is assigned at create and
// immutable afterwards.
type UpdateEmployeeRequest struct {
	ID string `json:"-"`

	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	MiddleName    string  `json:"middle_name"`
	DateOfBirth   *string `json:"date_of_birth"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"marital_status"`
	Nationality   string  `json:"nationality"`

	PersonalEmail                string `json:"personal_email"`
	PhoneNumber                  string `json:"phone_number"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`

	DepartmentID     *string `json:"department_id"`
	PositionID       *string `json:"position_id"`
	DirectManagerID  *string `json:"direct_manager_id"`
	HireDate         string  `json:"hire_date"`
	EmploymentStatus string  `json:"employment_status"`

	Salary         *float64 `json:"salary"`
	SalaryCurrency string   `json:"salary_currency"`

	IsActive *bool  `json:"is_active"`
	Notes    string `json:"notes"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Gender != "" && !validator.IsInSlice(r.Gender, Genders) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of M, F, O, P",
		})
	}

	if r.EmploymentStatus != "" && !validator.IsInSlice(r.EmploymentStatus, EmploymentStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "invalid employment_status",
		})
	}

	if r.SalaryCurrency != "" && !validator.IsValidCurrencyCode(r.SalaryCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_currency",
			Message: "salary_currency must be a three-letter currency code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TerminateEmployeeRequest struct {
	ID                string `json:"-"`
	TerminationDate   string `json:"termination_date"`
	TerminationReason string `json:"termination_reason"`
}

func (r *TerminateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.TerminationDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "termination_date",
			Message: "termination_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.TerminationDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "termination_date",
			Message: "termination_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	DepartmentID     *string
	PositionID       *string
	EmploymentStatus *string
	Search           *string
	Page             int
	Limit            int
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	UserID     *string `json:"user_id,omitempty"`

	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`

	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	MaritalStatus string  `json:"marital_status,omitempty"`
	Nationality   string  `json:"nationality,omitempty"`

	PersonalEmail                string `json:"personal_email,omitempty"`
	PhoneNumber                  string `json:"phone_number,omitempty"`
	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`

	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`

	EmployeePhotoURL *string `json:"employee_photo_url,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	DepartmentName   *string `json:"department_name,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	PositionTitle    *string `json:"position_title,omitempty"`
	DirectManagerID  *string `json:"direct_manager_id,omitempty"`
	ManagerName      *string `json:"manager_name,omitempty"`

	HireDate          string  `json:"hire_date"`
	YearsOfService    int     `json:"years_of_service"`
	EmploymentStatus  string  `json:"employment_status"`
	TerminationDate   *string `json:"termination_date,omitempty"`
	TerminationReason string  `json:"termination_reason,omitempty"`

	Salary         *float64 `json:"salary,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`

	IsActive bool   `json:"is_active"`
	Notes    string `json:"notes,omitempty"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
