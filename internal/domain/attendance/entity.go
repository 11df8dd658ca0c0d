package attendance

import "time"

type AttendanceStatus string

const (
	StatusPresent      AttendanceStatus = "PRESENT"
	StatusAbsent       AttendanceStatus = "ABSENT"
	StatusLate         AttendanceStatus = "LATE"
	StatusHalfDay      AttendanceStatus = "HALF_DAY"
	StatusWorkFromHome AttendanceStatus = "WORK_FROM_HOME"
	StatusOnLeave      AttendanceStatus = "ON_LEAVE"
	StatusHoliday      AttendanceStatus = "HOLIDAY"
)

var AttendanceStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusWorkFromHome),
	string(StatusOnLeave),
	string(StatusHoliday),
}

// Attendance entity. At most one record per employee per day.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       AttendanceStatus

	HoursWorked   *float64
	OvertimeHours float64
	BreakDuration float64

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}

// ComputeHours recomputes hours worked and overtime from the check-in
// and check-out times. A check-out earlier than check-in crosses
// midnight, so a day is added. Break duration is subtracted, and
// anything above an eight-hour day counts as overtime. When either
// time is missing, hours worked is unset and overtime is zero.
func (a *Attendance) ComputeHours() {
	if a.CheckInTime == nil || a.CheckOutTime == nil {
		a.HoursWorked = nil
		a.OvertimeHours = 0
		return
	}

	checkIn := combine(a.Date, *a.CheckInTime)
	checkOut := combine(a.Date, *a.CheckOutTime)
	if checkOut.Before(checkIn) {
		checkOut = checkOut.Add(24 * time.Hour)
	}

	hours := checkOut.Sub(checkIn).Hours() - a.BreakDuration
	a.HoursWorked = &hours

	if hours > 8 {
		a.OvertimeHours = hours - 8
	} else {
		a.OvertimeHours = 0
	}
}

func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC,
	)
}
