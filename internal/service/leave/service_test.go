package leave

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRequestRepo struct {
	leave.LeaveRequestRepository
	stored leave.LeaveRequest
}

func (r *stubLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.stored, nil
}

func (r *stubLeaveRequestRepo) UpdateStatus(ctx context.Context, lr leave.LeaveRequest) error {
	r.stored = lr
	return nil
}

func TestCancelKeepsDecisionStamps(t *testing.T) {
	approver := "mgr-1"
	decided := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	repo := &stubLeaveRequestRepo{stored: leave.LeaveRequest{
		ID:           "lr-1",
		EmployeeID:   "e1",
		LeaveTypeID:  "lt-1",
		StartDate:    time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		Status:       leave.LeaveStatusApproved,
		ApprovedBy:   &approver,
		ApprovalDate: &decided,
	}}
	svc := NewLeaveService(nil, repo, nil)

	got, err := svc.Cancel(context.Background(), "lr-1")
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusCancelled), got.Status)

	// Who decided the request stays on record after cancellation.
	require.NotNil(t, repo.stored.ApprovedBy)
	assert.Equal(t, approver, *repo.stored.ApprovedBy)
	require.NotNil(t, repo.stored.ApprovalDate)
	assert.Equal(t, decided, *repo.stored.ApprovalDate)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	repo := &stubLeaveRequestRepo{stored: leave.LeaveRequest{
		ID:        "lr-1",
		StartDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		Status:    leave.LeaveStatusCancelled,
	}}
	svc := NewLeaveService(nil, repo, nil)

	_, err := svc.Cancel(context.Background(), "lr-1")
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}
