package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/position"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// Seeder loads demo data. Every record is keyed by a natural unique
// field (department name, position title, username, badge number), so
// running it repeatedly never duplicates rows.
type Seeder struct {
	userRepo         user.UserRepository
	departmentRepo   department.DepartmentRepository
	positionRepo     position.PositionRepository
	employeeRepo     employee.EmployeeRepository
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
}

func New(db *database.DB) *Seeder {
	return &Seeder{
		userRepo:         postgresql.NewUserRepository(db),
		departmentRepo:   postgresql.NewDepartmentRepository(db),
		positionRepo:     postgresql.NewPositionRepository(db),
		employeeRepo:     postgresql.NewEmployeeRepository(db),
		leaveTypeRepo:    postgresql.NewLeaveTypeRepository(db),
		leaveRequestRepo: postgresql.NewLeaveRequestRepository(db),
		attendanceRepo:   postgresql.NewAttendanceRepository(db),
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	departments, err := s.seedDepartments(ctx)
	if err != nil {
		return err
	}

	positions, err := s.seedPositions(ctx, departments)
	if err != nil {
		return err
	}

	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	employees, err := s.seedEmployees(ctx, departments, positions)
	if err != nil {
		return err
	}

	leaveTypes, err := s.seedLeaveTypes(ctx)
	if err != nil {
		return err
	}

	if err := s.seedLeaveRequests(ctx, employees, leaveTypes); err != nil {
		return err
	}

	return s.seedAttendances(ctx, employees)
}

func (s *Seeder) seedDepartments(ctx context.Context) (map[string]string, error) {
	defs := []department.Department{
		{Name: "Engineering", Description: "Product development and infrastructure", IsActive: true},
		{Name: "Human Resources", Description: "People operations", IsActive: true},
		{Name: "Finance", Description: "Accounting and payroll", IsActive: true},
		{Name: "Sales", Description: "Revenue and customer relationships", IsActive: true},
	}

	ids := make(map[string]string, len(defs))
	for _, def := range defs {
		existing, err := s.departmentRepo.GetByName(ctx, def.Name)
		if err == nil {
			ids[def.Name] = existing.ID
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up department %q: %w", def.Name, err)
		}

		created, err := s.departmentRepo.Create(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("failed to create department %q: %w", def.Name, err)
		}
		slog.Info("Seeded department", "name", def.Name)
		ids[def.Name] = created.ID
	}
	return ids, nil
}

func (s *Seeder) seedPositions(ctx context.Context, departments map[string]string) (map[string]string, error) {
	f64 := func(v float64) *float64 { return &v }

	defs := []struct {
		department string
		pos        position.Position
	}{
		{"Engineering", position.Position{Title: "Software Engineer", MinSalary: f64(70000), MaxSalary: f64(120000), IsActive: true}},
		{"Engineering", position.Position{Title: "Engineering Manager", MinSalary: f64(110000), MaxSalary: f64(160000), IsActive: true}},
		{"Human Resources", position.Position{Title: "HR Specialist", MinSalary: f64(50000), MaxSalary: f64(80000), IsActive: true}},
		{"Finance", position.Position{Title: "Accountant", MinSalary: f64(55000), MaxSalary: f64(90000), IsActive: true}},
		{"Sales", position.Position{Title: "Account Executive", MinSalary: f64(45000), MaxSalary: f64(100000), IsActive: true}},
	}

	ids := make(map[string]string, len(defs))
	for _, def := range defs {
		deptID, ok := departments[def.department]
		if !ok {
			return nil, fmt.Errorf("unknown department %q for position %q", def.department, def.pos.Title)
		}

		existing, err := s.positionRepo.GetByTitleAndDepartment(ctx, def.pos.Title, deptID)
		if err == nil {
			ids[def.pos.Title] = existing.ID
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up position %q: %w", def.pos.Title, err)
		}

		def.pos.DepartmentID = deptID
		created, err := s.positionRepo.Create(ctx, def.pos)
		if err != nil {
			return nil, fmt.Errorf("failed to create position %q: %w", def.pos.Title, err)
		}
		slog.Info("Seeded position", "title", def.pos.Title, "department", def.department)
		ids[def.pos.Title] = created.ID
	}
	return ids, nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	_, err := s.userRepo.GetByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := s.userRepo.Create(ctx, user.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	slog.Info("Seeded admin user", "username", "admin")
	return nil
}

func (s *Seeder) seedEmployees(ctx context.Context, departments, positions map[string]string) (map[string]string, error) {
	f64 := func(v float64) *float64 { return &v }
	strp := func(v string) *string { return &v }
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	defs := []employee.Employee{
		{
			EmployeeID:       "EMP10000001",
			FirstName:        "Alice",
			LastName:         "Nguyen",
			Gender:           "F",
			DateOfBirth:      date(1990, time.March, 14),
			PersonalEmail:    "alice.nguyen@example.com",
			PhoneNumber:      "+1-555-0101",
			DepartmentID:     strp(departments["Engineering"]),
			PositionID:       strp(positions["Engineering Manager"]),
			HireDate:         time.Date(2019, time.June, 3, 0, 0, 0, 0, time.UTC),
			EmploymentStatus: employee.StatusActive,
			Salary:           f64(135000),
			SalaryCurrency:   "USD",
			IsActive:         true,
		},
		{
			EmployeeID:       "EMP10000002",
			FirstName:        "Bram",
			LastName:         "Santoso",
			Gender:           "M",
			DateOfBirth:      date(1995, time.September, 2),
			PersonalEmail:    "bram.santoso@example.com",
			PhoneNumber:      "+1-555-0102",
			DepartmentID:     strp(departments["Engineering"]),
			PositionID:       strp(positions["Software Engineer"]),
			HireDate:         time.Date(2022, time.February, 14, 0, 0, 0, 0, time.UTC),
			EmploymentStatus: employee.StatusActive,
			Salary:           f64(92000),
			SalaryCurrency:   "USD",
			IsActive:         true,
		},
		{
			EmployeeID:       "EMP10000003",
			FirstName:        "Carla",
			LastName:         "Mendes",
			Gender:           "F",
			DateOfBirth:      date(1988, time.December, 25),
			PersonalEmail:    "carla.mendes@example.com",
			PhoneNumber:      "+1-555-0103",
			DepartmentID:     strp(departments["Human Resources"]),
			PositionID:       strp(positions["HR Specialist"]),
			HireDate:         time.Date(2020, time.October, 1, 0, 0, 0, 0, time.UTC),
			EmploymentStatus: employee.StatusActive,
			Salary:           f64(68000),
			SalaryCurrency:   "USD",
			IsActive:         true,
		},
	}

	ids := make(map[string]string, len(defs))
	var managerID string
	for i, def := range defs {
		existing, err := s.employeeRepo.GetByEmployeeID(ctx, def.EmployeeID)
		if err == nil {
			ids[def.EmployeeID] = existing.ID
			if i == 0 {
				managerID = existing.ID
			}
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up employee %q: %w", def.EmployeeID, err)
		}

		// The first seeded employee manages the rest.
		if i > 0 && managerID != "" && *def.DepartmentID == departments["Engineering"] {
			def.DirectManagerID = &managerID
		}

		created, err := s.employeeRepo.Create(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("failed to create employee %q: %w", def.EmployeeID, err)
		}
		slog.Info("Seeded employee", "employee_id", def.EmployeeID)
		ids[def.EmployeeID] = created.ID
		if i == 0 {
			managerID = created.ID
		}
	}
	return ids, nil
}

func (s *Seeder) seedLeaveTypes(ctx context.Context) (map[string]string, error) {
	intp := func(v int) *int { return &v }

	defs := []leave.LeaveType{
		{Name: "Annual Leave", Description: "Paid yearly vacation", MaxDaysPerYear: intp(20), IsPaid: true, RequiresApproval: true, IsActive: true},
		{Name: "Sick Leave", Description: "Paid sick days", MaxDaysPerYear: intp(10), IsPaid: true, RequiresApproval: false, IsActive: true},
		{Name: "Unpaid Leave", Description: "Leave without pay", IsPaid: false, RequiresApproval: true, IsActive: true},
	}

	ids := make(map[string]string, len(defs))
	for _, def := range defs {
		existing, err := s.leaveTypeRepo.GetByName(ctx, def.Name)
		if err == nil {
			ids[def.Name] = existing.ID
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up leave type %q: %w", def.Name, err)
		}

		created, err := s.leaveTypeRepo.Create(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("failed to create leave type %q: %w", def.Name, err)
		}
		slog.Info("Seeded leave type", "name", def.Name)
		ids[def.Name] = created.ID
	}
	return ids, nil
}

// seedLeaveRequests adds one pending sample request, guarded by the
// overall request count so re-runs stay quiet even after the sample is
// approved or cancelled.
func (s *Seeder) seedLeaveRequests(ctx context.Context, employees, leaveTypes map[string]string) error {
	total, err := s.leaveRequestRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count leave requests: %w", err)
	}
	if total > 0 {
		return nil
	}

	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 14)
	if _, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:  employees["EMP10000002"],
		LeaveTypeID: leaveTypes["Annual Leave"],
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 4),
		Reason:      "Family trip",
		Status:      leave.LeaveStatusPending,
	}); err != nil {
		return fmt.Errorf("failed to create sample leave request: %w", err)
	}
	slog.Info("Seeded sample leave request")
	return nil
}

// seedAttendances fills the last seven days, skipping weekends.
func (s *Seeder) seedAttendances(ctx context.Context, employees map[string]string) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	checkIn := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(0, 1, 1, 17, 30, 0, 0, time.UTC)

	for _, id := range employees {
		for offset := 0; offset < 7; offset++ {
			date := today.AddDate(0, 0, -offset)
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}

			_, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, id, date)
			if err == nil {
				continue
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("failed to look up attendance: %w", err)
			}

			att := attendance.Attendance{
				EmployeeID:    id,
				Date:          date,
				CheckInTime:   &checkIn,
				CheckOutTime:  &checkOut,
				Status:        attendance.StatusPresent,
				BreakDuration: 0.5,
			}
			att.ComputeHours()

			if _, err := s.attendanceRepo.Create(ctx, att); err != nil {
				return fmt.Errorf("failed to create attendance record: %w", err)
			}
		}
	}
	return nil
}
