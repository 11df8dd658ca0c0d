package position

import "github.com/peoplecore/hrms-backend-go/internal/pkg/validator"

type CreatePositionRequest struct {
	Title        string   `json:"title"`
	DepartmentID string   `json:"department_id"`
	Description  string   `json:"description"`
	MinSalary    *float64 `json:"min_salary"`
	MaxSalary    *float64 `json:"max_salary"`
	Requirements string   `json:"requirements"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if r.MinSalary != nil && *r.MinSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_salary",
			Message: "min_salary must not be negative",
		})
	}

	if r.MinSalary != nil && r.MaxSalary != nil && *r.MaxSalary < *r.MinSalary {
		errs = append(errs, validator.ValidationError{
			Field:   "max_salary",
			Message: "max_salary must not be less than min_salary",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePositionRequest struct {
	ID           string   `json:"-"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	MinSalary    *float64 `json:"min_salary"`
	MaxSalary    *float64 `json:"max_salary"`
	Requirements string   `json:"requirements"`
	IsActive     *bool    `json:"is_active"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if r.MinSalary != nil && r.MaxSalary != nil && *r.MaxSalary < *r.MinSalary {
		errs = append(errs, validator.ValidationError{
			Field:   "max_salary",
			Message: "max_salary must not be less than min_salary",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DepartmentID   string   `json:"department_id"`
	DepartmentName *string  `json:"department_name,omitempty"`
	Description    string   `json:"description"`
	MinSalary      *float64 `json:"min_salary,omitempty"`
	MaxSalary      *float64 `json:"max_salary,omitempty"`
	Requirements   string   `json:"requirements"`
	IsActive       bool     `json:"is_active"`
}
