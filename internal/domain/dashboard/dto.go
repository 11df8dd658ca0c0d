package dashboard

// Stats is the aggregate widget payload. Every count defaults to zero
// on an empty store.
type Stats struct {
	TotalEmployees           int64 `json:"total_employees"`
	ActiveEmployees          int64 `json:"active_employees"`
	NewHiresThisMonth        int64 `json:"new_hires_this_month"`
	EmployeesOnLeave         int64 `json:"employees_on_leave"`
	DepartmentsWithEmployees int64 `json:"departments_with_employees"`
	PendingLeaveRequests     int64 `json:"pending_leave_requests"`
	ApprovedLeavesThisMonth  int64 `json:"approved_leaves_this_month"`
	PresentToday             int64 `json:"present_today"`
	LateToday                int64 `json:"late_today"`
	AbsentToday              int64 `json:"absent_today"`
}

type RecentEmployee struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Department *string `json:"department,omitempty"`
	HireDate   string  `json:"hire_date"`
}

type RecentLeaveRequest struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
}

type UpcomingBirthday struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
}

type Overview struct {
	Stats               Stats                `json:"stats"`
	RecentEmployees     []RecentEmployee     `json:"recent_employees"`
	RecentLeaveRequests []RecentLeaveRequest `json:"recent_leave_requests"`
	UpcomingBirthdays   []UpcomingBirthday   `json:"upcoming_birthdays"`
}
