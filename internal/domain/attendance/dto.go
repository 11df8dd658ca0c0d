package attendance

import (
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type SaveAttendanceRequest struct {
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time"`
	CheckOutTime  *string  `json:"check_out_time"`
	Status        string   `json:"status"`
	BreakDuration *float64 `json:"break_duration"`
	Notes         string   `json:"notes"`
}

func (r *SaveAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, AttendanceStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized attendance status",
		})
	}

	if r.BreakDuration != nil && *r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	Status        string   `json:"status"`
	HoursWorked   *float64 `json:"hours_worked,omitempty"`
	OvertimeHours float64  `json:"overtime_hours"`
	BreakDuration float64  `json:"break_duration"`
	Notes         string   `json:"notes,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type ListAttendancesResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
