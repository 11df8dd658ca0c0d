package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentSelect = `
	SELECT d.id, d.name, d.description, d.manager_id, d.is_active, d.created_at, d.updated_at,
		   CASE WHEN m.id IS NULL THEN NULL
				ELSE CONCAT_WS(' ', m.first_name, NULLIF(m.middle_name, ''), m.last_name)
		   END,
		   (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id AND e.is_active = TRUE)
	FROM departments d
	LEFT JOIN employees m ON m.id = d.manager_id
`

func scanDepartment(row pgx.Row, d *department.Department) error {
	return row.Scan(
		&d.ID, &d.Name, &d.Description, &d.ManagerID, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt, &d.ManagerName, &d.EmployeeCount,
	)
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO departments (name, description, manager_id, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		dept.Name, dept.Description, dept.ManagerID, dept.IsActive,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return department.Department{}, err
	}
	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	var d department.Department
	err := scanDepartment(q.QueryRow(ctx, departmentSelect+` WHERE d.id = $1`, id), &d)
	if err != nil {
		return department.Department{}, err
	}
	return d, nil
}

// GetByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	var d department.Department
	err := scanDepartment(q.QueryRow(ctx, departmentSelect+` WHERE d.name = $1`, name), &d)
	if err != nil {
		return department.Department{}, err
	}
	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, departmentSelect+` ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := scanDepartment(rows, &d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE departments
		SET name = $2, description = $3, manager_id = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		dept.ID, dept.Name, dept.Description, dept.ManagerID, dept.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("department with id %s not found", dept.ID)
	}
	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("department with id %s not found", id)
	}
	return nil
}
