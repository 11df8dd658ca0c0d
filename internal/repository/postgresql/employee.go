package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.employee_id, e.user_id,
		   e.first_name, e.last_name, e.middle_name, e.date_of_birth, e.gender, e.marital_status, e.nationality,
		   e.personal_email, e.phone_number,
		   e.emergency_contact_name, e.emergency_contact_phone, e.emergency_contact_relationship,
		   e.address_line1, e.address_line2, e.city, e.state, e.postal_code, e.country,
		   e.employee_photo, e.department_id, e.position_id, e.direct_manager_id,
		   e.hire_date, e.employment_status, e.termination_date, e.termination_reason,
		   e.salary, e.salary_currency, e.is_active, e.notes, e.created_at, e.updated_at,
		   d.name, p.title,
		   CASE WHEN m.id IS NULL THEN NULL
				ELSE CONCAT_WS(' ', m.first_name, NULLIF(m.middle_name, ''), m.last_name)
		   END
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN employees m ON m.id = e.direct_manager_id
`

func scanEmployee(row pgx.Row, e *employee.Employee) error {
	return row.Scan(
		&e.ID, &e.EmployeeID, &e.UserID,
		&e.FirstName, &e.LastName, &e.MiddleName, &e.DateOfBirth, &e.Gender, &e.MaritalStatus, &e.Nationality,
		&e.PersonalEmail, &e.PhoneNumber,
		&e.EmergencyContactName, &e.EmergencyContactPhone, &e.EmergencyContactRelationship,
		&e.AddressLine1, &e.AddressLine2, &e.City, &e.State, &e.PostalCode, &e.Country,
		&e.EmployeePhoto, &e.DepartmentID, &e.PositionID, &e.DirectManagerID,
		&e.HireDate, &e.EmploymentStatus, &e.TerminationDate, &e.TerminationReason,
		&e.Salary, &e.SalaryCurrency, &e.IsActive, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.PositionTitle, &e.ManagerName,
	)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			employee_id, user_id,
			first_name, last_name, middle_name, date_of_birth, gender, marital_status, nationality,
			personal_email, phone_number,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
			address_line1, address_line2, city, state, postal_code, country,
			employee_photo, department_id, position_id, direct_manager_id,
			hire_date, employment_status, termination_date, termination_reason,
			salary, salary_currency, is_active, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.UserID,
		emp.FirstName, emp.LastName, emp.MiddleName, emp.DateOfBirth, emp.Gender, emp.MaritalStatus, emp.Nationality,
		emp.PersonalEmail, emp.PhoneNumber,
		emp.EmergencyContactName, emp.EmergencyContactPhone, emp.EmergencyContactRelationship,
		emp.AddressLine1, emp.AddressLine2, emp.City, emp.State, emp.PostalCode, emp.Country,
		emp.EmployeePhoto, emp.DepartmentID, emp.PositionID, emp.DirectManagerID,
		emp.HireDate, emp.EmploymentStatus, emp.TerminationDate, emp.TerminationReason,
		emp.Salary, emp.SalaryCurrency, emp.IsActive, emp.Notes,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	var e employee.Employee
	err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id), &e)
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	var e employee.Employee
	err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.employee_id = $1`, employeeID), &e)
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	var e employee.Employee
	err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID), &e)
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.PositionID != nil {
		args = append(args, *filter.PositionID)
		conditions = append(conditions, fmt.Sprintf("e.position_id = $%d", len(args)))
	}
	if filter.EmploymentStatus != nil {
		args = append(args, *filter.EmploymentStatus)
		conditions = append(conditions, fmt.Sprintf("e.employment_status = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_id ILIKE $%d OR e.personal_email ILIKE $%d)",
			n, n, n, n,
		))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := employeeSelect + where + ` ORDER BY e.last_name, e.first_name`
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

// ListDirectReports implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListDirectReports(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, employeeSelect+` WHERE e.direct_manager_id = $1 AND e.is_active = TRUE ORDER BY e.last_name, e.first_name`, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
// The employee_id column is never touched here: the badge number is
// immutable after create.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, middle_name = $4, date_of_birth = $5,
			gender = $6, marital_status = $7, nationality = $8,
			personal_email = $9, phone_number = $10,
			emergency_contact_name = $11, emergency_contact_phone = $12, emergency_contact_relationship = $13,
			address_line1 = $14, address_line2 = $15, city = $16, state = $17, postal_code = $18, country = $19,
			employee_photo = $20, department_id = $21, position_id = $22, direct_manager_id = $23,
			hire_date = $24, employment_status = $25, termination_date = $26, termination_reason = $27,
			salary = $28, salary_currency = $29, is_active = $30, notes = $31,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.MiddleName, emp.DateOfBirth,
		emp.Gender, emp.MaritalStatus, emp.Nationality,
		emp.PersonalEmail, emp.PhoneNumber,
		emp.EmergencyContactName, emp.EmergencyContactPhone, emp.EmergencyContactRelationship,
		emp.AddressLine1, emp.AddressLine2, emp.City, emp.State, emp.PostalCode, emp.Country,
		emp.EmployeePhoto, emp.DepartmentID, emp.PositionID, emp.DirectManagerID,
		emp.HireDate, emp.EmploymentStatus, emp.TerminationDate, emp.TerminationReason,
		emp.Salary, emp.SalaryCurrency, emp.IsActive, emp.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("employee with id %s not found", emp.ID)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("employee with id %s not found", id)
	}
	return nil
}
