package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeSelect = `
	SELECT id, name, description, max_days_per_year, is_paid, requires_approval, is_active, created_at
	FROM leave_types
`

func scanLeaveType(row pgx.Row, lt *leave.LeaveType) error {
	return row.Scan(
		&lt.ID, &lt.Name, &lt.Description, &lt.MaxDaysPerYear,
		&lt.IsPaid, &lt.RequiresApproval, &lt.IsActive, &lt.CreatedAt,
	)
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (name, description, max_days_per_year, is_paid, requires_approval, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		lt.Name, lt.Description, lt.MaxDaysPerYear, lt.IsPaid, lt.RequiresApproval, lt.IsActive,
	).Scan(&lt.ID, &lt.CreatedAt)
	if err != nil {
		return leave.LeaveType{}, err
	}
	return lt, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	var lt leave.LeaveType
	err := scanLeaveType(q.QueryRow(ctx, leaveTypeSelect+` WHERE id = $1`, id), &lt)
	if err != nil {
		return leave.LeaveType{}, err
	}
	return lt, nil
}

// GetByName implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	var lt leave.LeaveType
	err := scanLeaveType(q.QueryRow(ctx, leaveTypeSelect+` WHERE name = $1`, name), &lt)
	if err != nil {
		return leave.LeaveType{}, err
	}
	return lt, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, leaveTypeSelect+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaveTypes []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := scanLeaveType(rows, &lt); err != nil {
			return nil, err
		}
		leaveTypes = append(leaveTypes, lt)
	}
	return leaveTypes, rows.Err()
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, lt leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $2, description = $3, max_days_per_year = $4, is_paid = $5,
			requires_approval = $6, is_active = $7
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		lt.ID, lt.Name, lt.Description, lt.MaxDaysPerYear, lt.IsPaid, lt.RequiresApproval, lt.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("leave type with id %s not found", lt.ID)
	}
	return nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("leave type with id %s not found", id)
	}
	return nil
}
