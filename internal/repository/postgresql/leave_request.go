package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.reason,
		   lr.status, lr.approved_by, lr.approval_date, lr.rejection_reason,
		   lr.created_at, lr.updated_at,
		   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name),
		   lt.name
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
	JOIN leave_types lt ON lt.id = lr.leave_type_id
`

func scanLeaveRequest(row pgx.Row, lr *leave.LeaveRequest) error {
	return row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.ApprovedBy, &lr.ApprovalDate, &lr.RejectionReason,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.LeaveTypeName,
	)
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		lr.EmployeeID, lr.LeaveTypeID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	var lr leave.LeaveRequest
	err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id), &lr)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("lr.start_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("lr.end_date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests lr` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := leaveRequestSelect + where + ` ORDER BY lr.created_at DESC`
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := scanLeaveRequest(rows, &lr); err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}
	return requests, total, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, lr leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approval_date = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		lr.ID, lr.Status, lr.ApprovedBy, lr.ApprovalDate, lr.RejectionReason,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("leave request with id %s not found", lr.ID)
	}
	return nil
}

// Count implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests`).Scan(&count)
	return count, err
}
