package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time, a.status,
		   a.hours_worked, a.overtime_hours, a.break_duration, a.notes, a.created_at, a.updated_at,
		   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name)
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

// toPgTime maps a clock value onto the TIME column codec. pgx does not
// encode a bare time.Time into TIME columns.
func toPgTime(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	micros := int64(t.Hour())*3600*1e6 + int64(t.Minute())*60*1e6 + int64(t.Second())*1e6
	return pgtype.Time{Microseconds: micros, Valid: true}
}

func fromPgTime(pt pgtype.Time) *time.Time {
	if !pt.Valid {
		return nil
	}
	secs := pt.Microseconds / 1e6
	t := time.Date(0, 1, 1, int(secs/3600), int(secs/60%60), int(secs%60), 0, time.UTC)
	return &t
}

func scanAttendance(row pgx.Row, a *attendance.Attendance) error {
	var checkIn, checkOut pgtype.Time
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &checkIn, &checkOut, &a.Status,
		&a.HoursWorked, &a.OvertimeHours, &a.BreakDuration, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
	)
	if err != nil {
		return err
	}
	a.CheckInTime = fromPgTime(checkIn)
	a.CheckOutTime = fromPgTime(checkOut)
	return nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO attendances (
			employee_id, date, check_in_time, check_out_time, status,
			hours_worked, overtime_hours, break_duration, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, toPgTime(att.CheckInTime), toPgTime(att.CheckOutTime), att.Status,
		att.HoursWorked, att.OvertimeHours, att.BreakDuration, att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	var a attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id), &a)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	var a attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`, employeeID, date), &a)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return a, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := attendanceSelect + where + ` ORDER BY a.date DESC`
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := scanAttendance(rows, &a); err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, a)
	}
	return attendances, total, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE attendances
		SET check_in_time = $2, check_out_time = $3, status = $4,
			hours_worked = $5, overtime_hours = $6, break_duration = $7, notes = $8,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		att.ID, toPgTime(att.CheckInTime), toPgTime(att.CheckOutTime), att.Status,
		att.HoursWorked, att.OvertimeHours, att.BreakDuration, att.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("attendance record with id %s not found", att.ID)
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("attendance record with id %s not found", id)
	}
	return nil
}
