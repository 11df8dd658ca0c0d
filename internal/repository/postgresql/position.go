package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/position"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

const positionSelect = `
	SELECT p.id, p.title, p.department_id, p.description, p.min_salary, p.max_salary,
		   p.requirements, p.is_active, p.created_at, p.updated_at, d.name
	FROM positions p
	JOIN departments d ON d.id = p.department_id
`

func scanPosition(row pgx.Row, p *position.Position) error {
	return row.Scan(
		&p.ID, &p.Title, &p.DepartmentID, &p.Description, &p.MinSalary, &p.MaxSalary,
		&p.Requirements, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.DepartmentName,
	)
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO positions (title, department_id, description, min_salary, max_salary, requirements, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		pos.Title, pos.DepartmentID, pos.Description, pos.MinSalary, pos.MaxSalary,
		pos.Requirements, pos.IsActive,
	).Scan(&pos.ID, &pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		return position.Position{}, err
	}
	return pos, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)
	var p position.Position
	err := scanPosition(q.QueryRow(ctx, positionSelect+` WHERE p.id = $1`, id), &p)
	if err != nil {
		return position.Position{}, err
	}
	return p, nil
}

// GetByTitleAndDepartment implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByTitleAndDepartment(ctx context.Context, title, departmentID string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)
	var p position.Position
	err := scanPosition(q.QueryRow(ctx, positionSelect+` WHERE p.title = $1 AND p.department_id = $2`, title, departmentID), &p)
	if err != nil {
		return position.Position{}, err
	}
	return p, nil
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context, departmentID *string) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := positionSelect
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE p.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY d.name, p.title`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := scanPosition(rows, &p); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, pos position.Position) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE positions
		SET title = $2, description = $3, min_salary = $4, max_salary = $5,
			requirements = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		pos.ID, pos.Title, pos.Description, pos.MinSalary, pos.MaxSalary,
		pos.Requirements, pos.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("position with id %s not found", pos.ID)
	}
	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("position with id %s not found", id)
	}
	return nil
}
