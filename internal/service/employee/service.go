package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
	"github.com/peoplecore/hrms-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

// mapEmployeeToResponse maps the entity plus its derived fields. The
// derived values are recomputed on every call, never cached.
func mapEmployeeToResponse(emp employee.Employee, now time.Time) employee.EmployeeResponse {
	var dobStr *string
	if emp.DateOfBirth != nil {
		s := emp.DateOfBirth.Format("2006-01-02")
		dobStr = &s
	}

	var terminationDateStr *string
	if emp.TerminationDate != nil {
		s := emp.TerminationDate.Format("2006-01-02")
		terminationDateStr = &s
	}

	return employee.EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		UserID:     emp.UserID,

		FirstName:  emp.FirstName,
		MiddleName: emp.MiddleName,
		LastName:   emp.LastName,
		FullName:   emp.FullName(),

		DateOfBirth:   dobStr,
		Age:           emp.AgeAt(now),
		Gender:        emp.Gender,
		MaritalStatus: emp.MaritalStatus,
		Nationality:   emp.Nationality,

		PersonalEmail:                emp.PersonalEmail,
		PhoneNumber:                  emp.PhoneNumber,
		EmergencyContactName:         emp.EmergencyContactName,
		EmergencyContactPhone:        emp.EmergencyContactPhone,
		EmergencyContactRelationship: emp.EmergencyContactRelationship,

		AddressLine1: emp.AddressLine1,
		AddressLine2: emp.AddressLine2,
		City:         emp.City,
		State:        emp.State,
		PostalCode:   emp.PostalCode,
		Country:      emp.Country,

		EmployeePhotoURL: emp.EmployeePhoto,
		DepartmentID:     emp.DepartmentID,
		DepartmentName:   emp.DepartmentName,
		PositionID:       emp.PositionID,
		PositionTitle:    emp.PositionTitle,
		DirectManagerID:  emp.DirectManagerID,
		ManagerName:      emp.ManagerName,

		HireDate:          emp.HireDate.Format("2006-01-02"),
		YearsOfService:    emp.YearsOfServiceAt(now),
		EmploymentStatus:  string(emp.EmploymentStatus),
		TerminationDate:   terminationDateStr,
		TerminationReason: emp.TerminationReason,

		Salary:         emp.Salary,
		SalaryCurrency: emp.SalaryCurrency,

		IsActive: emp.IsActive,
		Notes:    emp.Notes,
	}
}

func translateEmployeeWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			switch pgErr.ConstraintName {
			case "employees_user_id_key":
				return employee.ErrUserAlreadyLinked
			case "employees_employee_id_key":
				return employee.ErrEmployeeIDExists
			}
			return fmt.Errorf("employee conflicts with an existing record: %w", apperr.ErrUniqueness)
		case "23503": // foreign_key_violation
			return fmt.Errorf("referenced record does not exist: %w", apperr.ErrReference)
		}
	}
	return err
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// One-to-one user link: reject early when the user is already
	// bound to another employee. The unique index still backstops
	// concurrent creates.
	if req.UserID != nil {
		_, err := s.employeeRepo.GetByUserID(ctx, *req.UserID)
		if err == nil {
			return employee.EmployeeResponse{}, employee.ErrUserAlreadyLinked
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check user link: %w", err)
		}
	}

	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		dob = &parsed
	}

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", req.HireDate)
	}

	status := employee.StatusActive
	if req.EmploymentStatus != "" {
		status = employee.EmploymentStatus(req.EmploymentStatus)
	}

	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	newEmployee := employee.Employee{
		EmployeeID: employee.NewEmployeeID(),
		UserID:     req.UserID,

		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		DateOfBirth:   dob,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		Nationality:   req.Nationality,

		PersonalEmail:                req.PersonalEmail,
		PhoneNumber:                  req.PhoneNumber,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,

		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,

		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		DirectManagerID:  req.DirectManagerID,
		HireDate:         hireDate,
		EmploymentStatus: status,

		Salary:         req.Salary,
		SalaryCurrency: currency,

		IsActive: true,
		Notes:    req.Notes,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if translated := translateEmployeeWriteError(err); translated != err {
			return employee.EmployeeResponse{}, translated
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp, time.Now()), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	now := time.Now()
	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		results = append(results, mapEmployeeToResponse(emp, now))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  results,
	}, nil
}

// ListDirectReports implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDirectReports(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, managerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}

	reports, err := s.employeeRepo.ListDirectReports(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct reports: %w", err)
	}

	now := time.Now()
	results := make([]employee.EmployeeResponse, 0, len(reports))
	for _, emp := range reports {
		results = append(results, mapEmployeeToResponse(emp, now))
	}
	return results, nil
}

// Update implements employee.EmployeeService. The badge number is
// never regenerated or overwritten here.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		dob = &parsed
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.MiddleName = req.MiddleName
	existing.DateOfBirth = dob
	existing.Gender = req.Gender
	existing.MaritalStatus = req.MaritalStatus
	existing.Nationality = req.Nationality

	existing.PersonalEmail = req.PersonalEmail
	existing.PhoneNumber = req.PhoneNumber
	existing.EmergencyContactName = req.EmergencyContactName
	existing.EmergencyContactPhone = req.EmergencyContactPhone
	existing.EmergencyContactRelationship = req.EmergencyContactRelationship

	existing.AddressLine1 = req.AddressLine1
	existing.AddressLine2 = req.AddressLine2
	existing.City = req.City
	existing.State = req.State
	existing.PostalCode = req.PostalCode
	existing.Country = req.Country

	existing.DepartmentID = req.DepartmentID
	existing.PositionID = req.PositionID
	existing.DirectManagerID = req.DirectManagerID
	if req.HireDate != "" {
		existing.HireDate, _ = time.Parse("2006-01-02", req.HireDate)
	}
	if req.EmploymentStatus != "" {
		existing.EmploymentStatus = employee.EmploymentStatus(req.EmploymentStatus)
	}

	existing.Salary = req.Salary
	if req.SalaryCurrency != "" {
		existing.SalaryCurrency = req.SalaryCurrency
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.Notes = req.Notes

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		if translated := translateEmployeeWriteError(err); translated != err {
			return employee.EmployeeResponse{}, translated
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Terminate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, req employee.TerminateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	terminationDate, _ := time.Parse("2006-01-02", req.TerminationDate)
	existing.EmploymentStatus = employee.StatusTerminated
	existing.TerminationDate = &terminationDate
	existing.TerminationReason = req.TerminationReason

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to terminate employee: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// UploadPhoto implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadPhoto(ctx context.Context, id string, photo io.Reader, filename string) (employee.EmployeeResponse, error) {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	path, err := s.fileService.UploadEmployeePhoto(ctx, existing.EmployeeID, photo, filename)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	existing.EmployeePhoto = &path
	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save photo reference: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete implements employee.EmployeeService. Leave requests, reviews,
// attendance records and documents cascade with the employee row.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
