package postgresql

import (
	"context"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetStats(ctx context.Context, today time.Time) (dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE AND employment_status = 'ACTIVE'),
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE AND hire_date >= $1),
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE AND employment_status = 'ON_LEAVE'),
			(SELECT COUNT(*) FROM departments d
				WHERE EXISTS (SELECT 1 FROM employees e WHERE e.department_id = d.id AND e.is_active = TRUE)),
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'),
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'APPROVED' AND start_date >= $1),
			(SELECT COUNT(*) FROM attendances WHERE date = $2 AND status = 'PRESENT'),
			(SELECT COUNT(*) FROM attendances WHERE date = $2 AND status = 'LATE'),
			(SELECT COUNT(*) FROM attendances WHERE date = $2 AND status = 'ABSENT')
	`
	var s dashboard.Stats
	err := q.QueryRow(ctx, query, monthStart, today).Scan(
		&s.TotalEmployees, &s.ActiveEmployees, &s.NewHiresThisMonth, &s.EmployeesOnLeave,
		&s.DepartmentsWithEmployees, &s.PendingLeaveRequests, &s.ApprovedLeavesThisMonth,
		&s.PresentToday, &s.LateToday, &s.AbsentToday,
	)
	if err != nil {
		return dashboard.Stats{}, err
	}
	return s, nil
}

// ListRecentEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListRecentEmployees(ctx context.Context, limit int) ([]dashboard.RecentEmployee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT e.id, e.employee_id,
			   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name),
			   d.name, e.hire_date
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.is_active = TRUE
		ORDER BY e.created_at DESC
		LIMIT $1
	`
	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.RecentEmployee
	for rows.Next() {
		var re dashboard.RecentEmployee
		var hireDate time.Time
		if err := rows.Scan(&re.ID, &re.EmployeeID, &re.FullName, &re.Department, &hireDate); err != nil {
			return nil, err
		}
		re.HireDate = hireDate.Format("2006-01-02")
		result = append(result, re)
	}
	return result, rows.Err()
}

// ListRecentLeaveRequests implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListRecentLeaveRequests(ctx context.Context, limit int) ([]dashboard.RecentLeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lr.id,
			   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name),
			   lt.name, lr.start_date, lr.end_date, lr.status
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		ORDER BY lr.created_at DESC
		LIMIT $1
	`
	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.RecentLeaveRequest
	for rows.Next() {
		var rl dashboard.RecentLeaveRequest
		var start, end time.Time
		if err := rows.Scan(&rl.ID, &rl.EmployeeName, &rl.LeaveType, &start, &end, &rl.Status); err != nil {
			return nil, err
		}
		rl.StartDate = start.Format("2006-01-02")
		rl.EndDate = end.Format("2006-01-02")
		result = append(result, rl)
	}
	return result, rows.Err()
}

// ListUpcomingBirthdays implements dashboard.DashboardRepository.
// The lookahead window matches on month/day of birth. When the window
// spans a month boundary the predicate splits into the tail of the
// current month and the head of the next.
func (r *dashboardRepositoryImpl) ListUpcomingBirthdays(ctx context.Context, today time.Time, days, limit int) ([]dashboard.UpcomingBirthday, error) {
	q := GetQuerier(ctx, r.db)

	windowEnd := today.AddDate(0, 0, days)

	base := `
		SELECT e.id, e.employee_id,
			   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name),
			   e.date_of_birth
		FROM employees e
		WHERE e.is_active = TRUE AND e.date_of_birth IS NOT NULL
	`

	var query string
	var args []interface{}
	if today.Month() == windowEnd.Month() {
		query = base + `
			AND EXTRACT(MONTH FROM e.date_of_birth) = $1
			AND EXTRACT(DAY FROM e.date_of_birth) BETWEEN $2 AND $3
			ORDER BY EXTRACT(DAY FROM e.date_of_birth)
			LIMIT $4
		`
		args = []interface{}{int(today.Month()), today.Day(), windowEnd.Day(), limit}
	} else {
		query = base + `
			AND (
				(EXTRACT(MONTH FROM e.date_of_birth) = $1 AND EXTRACT(DAY FROM e.date_of_birth) >= $2)
				OR (EXTRACT(MONTH FROM e.date_of_birth) = $3 AND EXTRACT(DAY FROM e.date_of_birth) <= $4)
			)
			ORDER BY EXTRACT(MONTH FROM e.date_of_birth), EXTRACT(DAY FROM e.date_of_birth)
			LIMIT $5
		`
		args = []interface{}{int(today.Month()), today.Day(), int(windowEnd.Month()), windowEnd.Day(), limit}
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.UpcomingBirthday
	for rows.Next() {
		var ub dashboard.UpcomingBirthday
		var dob time.Time
		if err := rows.Scan(&ub.ID, &ub.EmployeeID, &ub.FullName, &dob); err != nil {
			return nil, err
		}
		ub.DateOfBirth = dob.Format("2006-01-02")
		result = append(result, ub)
	}
	return result, rows.Err()
}
