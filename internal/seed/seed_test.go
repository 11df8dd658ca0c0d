package seed

import (
	"context"
	"os"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

type rowCounts struct {
	users         int64
	departments   int
	leaveTypes    int
	employees     int64
	leaveRequests int64
	attendances   int64
}

func countRows(t *testing.T, ctx context.Context, s *Seeder) rowCounts {
	t.Helper()

	users, err := s.userRepo.Count(ctx)
	require.NoError(t, err)

	departments, err := s.departmentRepo.List(ctx)
	require.NoError(t, err)

	leaveTypes, err := s.leaveTypeRepo.List(ctx)
	require.NoError(t, err)

	_, employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Page: 1, Limit: 1})
	require.NoError(t, err)

	leaveRequests, err := s.leaveRequestRepo.Count(ctx)
	require.NoError(t, err)

	_, attendances, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{Page: 1, Limit: 1})
	require.NoError(t, err)

	return rowCounts{
		users:         users,
		departments:   len(departments),
		leaveTypes:    len(leaveTypes),
		employees:     employees,
		leaveRequests: leaveRequests,
		attendances:   attendances,
	}
}

func TestRunTwiceAddsNothing(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(db.Close)

	s := New(db)
	ctx := context.Background()

	require.NoError(t, s.Run(ctx))
	first := countRows(t, ctx, s)

	require.NoError(t, s.Run(ctx))
	require.Equal(t, first, countRows(t, ctx, s))
}
