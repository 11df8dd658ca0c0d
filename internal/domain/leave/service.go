package leave

import (
	"context"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
)

type LeaveService interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetLeaveType(ctx context.Context, id string) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error

	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
	Approve(ctx context.Context, actor user.Principal, id string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, actor user.Principal, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, id string) (LeaveRequestResponse, error)
}
