package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func mapAttendanceToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	var checkInStr, checkOutStr *string
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format("15:04:05")
		checkInStr = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format("15:04:05")
		checkOutStr = &s
	}

	return attendance.AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Date:          a.Date.Format("2006-01-02"),
		CheckInTime:   checkInStr,
		CheckOutTime:  checkOutStr,
		Status:        string(a.Status),
		HoursWorked:   a.HoursWorked,
		OvertimeHours: a.OvertimeHours,
		BreakDuration: a.BreakDuration,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

func parseTimeOfDay(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("15:04:05", *s)
	if err != nil {
		t, err = time.Parse("15:04", *s)
		if err != nil {
			return nil
		}
	}
	return &t
}

// Create implements attendance.AttendanceService. Hours worked and
// overtime are derived before the write; the (employee, date) unique
// index turns a concurrent duplicate into ErrAttendanceExists.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.SaveAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	status := attendance.StatusPresent
	if req.Status != "" {
		status = attendance.AttendanceStatus(req.Status)
	}

	entity := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		CheckInTime:  parseTimeOfDay(req.CheckInTime),
		CheckOutTime: parseTimeOfDay(req.CheckOutTime),
		Status:       status,
		Notes:        req.Notes,
	}
	if req.BreakDuration != nil {
		entity.BreakDuration = *req.BreakDuration
	}
	entity.ComputeHours()

	created, err := s.attendanceRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
			case "23503": // foreign_key_violation
				return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
			}
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return mapAttendanceToResponse(a), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendancesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendancesResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	results := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		results = append(results, mapAttendanceToResponse(a))
	}

	return attendance.ListAttendancesResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: results,
	}, nil
}

// Update implements attendance.AttendanceService. Hours worked and
// overtime are recomputed on every change to the time fields.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.SaveAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	// The (employee, date) pair identifies the record; moving it to
	// another employee or day is rejected, not silently ignored.
	var identityErrs validator.ValidationErrors
	if req.EmployeeID != existing.EmployeeID {
		identityErrs = append(identityErrs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id cannot be changed",
		})
	}
	if req.Date != existing.Date.Format("2006-01-02") {
		identityErrs = append(identityErrs, validator.ValidationError{
			Field:   "date",
			Message: "date cannot be changed",
		})
	}
	if len(identityErrs) > 0 {
		return attendance.AttendanceResponse{}, identityErrs
	}

	existing.CheckInTime = parseTimeOfDay(req.CheckInTime)
	existing.CheckOutTime = parseTimeOfDay(req.CheckOutTime)
	if req.Status != "" {
		existing.Status = attendance.AttendanceStatus(req.Status)
	}
	if req.BreakDuration != nil {
		existing.BreakDuration = *req.BreakDuration
	}
	existing.Notes = req.Notes
	existing.ComputeHours()

	if err := s.attendanceRepo.Update(ctx, existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}
