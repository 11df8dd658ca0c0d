package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID               string
	Name             string
	Description      string
	MaxDaysPerYear   *int
	IsPaid           bool
	RequiresApproval bool
	IsActive         bool
	CreatedAt        time.Time
}

type LeaveRequestStatus string

const (
	LeaveStatusPending   LeaveRequestStatus = "PENDING"
	LeaveStatusApproved  LeaveRequestStatus = "APPROVED"
	LeaveStatusRejected  LeaveRequestStatus = "REJECTED"
	LeaveStatusCancelled LeaveRequestStatus = "CANCELLED"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovalDate    *time.Time
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName  *string
	LeaveTypeName *string
}

// DurationDays is the inclusive day count of the requested range.
func (r LeaveRequest) DurationDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// CanTransitionTo reports whether a status change is allowed. Pending
// requests may be approved, rejected or cancelled; decided requests
// may still be cancelled. Nothing returns to pending.
func (s LeaveRequestStatus) CanTransitionTo(next LeaveRequestStatus) bool {
	switch s {
	case LeaveStatusPending:
		return next == LeaveStatusApproved || next == LeaveStatusRejected || next == LeaveStatusCancelled
	case LeaveStatusApproved, LeaveStatusRejected:
		return next == LeaveStatusCancelled
	default:
		return false
	}
}
