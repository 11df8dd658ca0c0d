package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
}

func NewLeaveService(
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
	}
}

func mapLeaveTypeToResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:               lt.ID,
		Name:             lt.Name,
		Description:      lt.Description,
		MaxDaysPerYear:   lt.MaxDaysPerYear,
		IsPaid:           lt.IsPaid,
		RequiresApproval: lt.RequiresApproval,
		IsActive:         lt.IsActive,
	}
}

func mapLeaveRequestToResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	var approvalDateStr *string
	if lr.ApprovalDate != nil {
		s := lr.ApprovalDate.Format(time.RFC3339)
		approvalDateStr = &s
	}

	return leave.LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		LeaveTypeID:     lr.LeaveTypeID,
		LeaveTypeName:   lr.LeaveTypeName,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		DurationDays:    lr.DurationDays(),
		Reason:          lr.Reason,
		Status:          string(lr.Status),
		ApprovedBy:      lr.ApprovedBy,
		ApprovalDate:    approvalDateStr,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt.Format(time.RFC3339),
	}
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	entity := leave.LeaveType{
		Name:             req.Name,
		Description:      req.Description,
		MaxDaysPerYear:   req.MaxDaysPerYear,
		IsPaid:           true,
		RequiresApproval: true,
		IsActive:         true,
	}
	if req.IsPaid != nil {
		entity.IsPaid = *req.IsPaid
	}
	if req.RequiresApproval != nil {
		entity.RequiresApproval = *req.RequiresApproval
	}

	created, err := s.leaveTypeRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNameExists
		}
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return mapLeaveTypeToResponse(created), nil
}

// GetLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveType(ctx context.Context, id string) (leave.LeaveTypeResponse, error) {
	lt, err := s.leaveTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}
	return mapLeaveTypeToResponse(lt), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	leaveTypes, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	results := make([]leave.LeaveTypeResponse, 0, len(leaveTypes))
	for _, lt := range leaveTypes {
		results = append(results, mapLeaveTypeToResponse(lt))
	}
	return results, nil
}

// UpdateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	existing, err := s.leaveTypeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	existing.Description = req.Description
	existing.MaxDaysPerYear = req.MaxDaysPerYear
	if req.IsPaid != nil {
		existing.IsPaid = *req.IsPaid
	}
	if req.RequiresApproval != nil {
		existing.RequiresApproval = *req.RequiresApproval
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.leaveTypeRepo.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNameExists
		}
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to update leave type: %w", err)
	}

	return s.GetLeaveType(ctx, req.ID)
}

// DeleteLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	if _, err := s.leaveTypeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to get leave type: %w", err)
	}

	if err := s.leaveTypeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}

// CreateRequest implements leave.LeaveService. The start/end ordering
// rule is checked before any write; no row is persisted on failure.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if _, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	entity := leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      leave.LeaveStatusPending,
	}

	created, err := s.leaveRequestRepo.Create(ctx, entity)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.GetRequest(ctx, created.ID)
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return mapLeaveRequestToResponse(lr), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	results := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		results = append(results, mapLeaveRequestToResponse(lr))
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount:    total,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    int(math.Ceil(float64(total) / float64(filter.Limit))),
		LeaveRequests: results,
	}, nil
}

// transition loads the request, guards the status change, applies
// mutate and persists. The approver is always stamped from the
// explicit actor, never inferred.
func (s *LeaveServiceImpl) transition(ctx context.Context, id string, next leave.LeaveRequestStatus, mutate func(*leave.LeaveRequest)) (leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !lr.Status.CanTransitionTo(next) {
		return leave.LeaveRequestResponse{}, fmt.Errorf("%s to %s: %w", lr.Status, next, leave.ErrInvalidTransition)
	}

	lr.Status = next
	if mutate != nil {
		mutate(&lr)
	}

	if err := s.leaveRequestRepo.UpdateStatus(ctx, lr); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return s.GetRequest(ctx, id)
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, actor user.Principal, id string) (leave.LeaveRequestResponse, error) {
	if actor.EmployeeID == "" {
		return leave.LeaveRequestResponse{}, fmt.Errorf("acting principal has no employee profile: %w", employee.ErrEmployeeNotFound)
	}

	now := time.Now()
	return s.transition(ctx, id, leave.LeaveStatusApproved, func(lr *leave.LeaveRequest) {
		lr.ApprovedBy = &actor.EmployeeID
		lr.ApprovalDate = &now
	})
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, actor user.Principal, req leave.RejectLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if actor.EmployeeID == "" {
		return leave.LeaveRequestResponse{}, fmt.Errorf("acting principal has no employee profile: %w", employee.ErrEmployeeNotFound)
	}

	now := time.Now()
	return s.transition(ctx, req.ID, leave.LeaveStatusRejected, func(lr *leave.LeaveRequest) {
		lr.ApprovedBy = &actor.EmployeeID
		lr.ApprovalDate = &now
		lr.RejectionReason = req.Reason
	})
}

// Cancel implements leave.LeaveService. Cancellation records no
// actor; the schema only tracks who decided a request.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	return s.transition(ctx, id, leave.LeaveStatusCancelled, nil)
}
