package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	strp := func(s string) *string { return &s }

	t.Run("nil and blank", func(t *testing.T) {
		assert.Nil(t, parseTimeOfDay(nil))
		assert.Nil(t, parseTimeOfDay(strp("")))
	})

	t.Run("with seconds", func(t *testing.T) {
		got := parseTimeOfDay(strp("09:15:30"))
		require.NotNil(t, got)
		assert.Equal(t, 9, got.Hour())
		assert.Equal(t, 15, got.Minute())
		assert.Equal(t, 30, got.Second())
	})

	t.Run("without seconds", func(t *testing.T) {
		got := parseTimeOfDay(strp("17:45"))
		require.NotNil(t, got)
		assert.Equal(t, 17, got.Hour())
		assert.Equal(t, 45, got.Minute())
		assert.Zero(t, got.Second())
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, parseTimeOfDay(strp("quarter past nine")))
	})
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	stored attendance.Attendance
}

func (r *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return r.stored, nil
}

func (r *stubAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	r.stored = a
	return nil
}

func TestUpdateRejectsIdentityChanges(t *testing.T) {
	strp := func(s string) *string { return &s }

	newService := func() (attendance.AttendanceService, *stubAttendanceRepo) {
		repo := &stubAttendanceRepo{stored: attendance.Attendance{
			ID:         "a1",
			EmployeeID: "e1",
			Date:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
		}}
		return NewAttendanceService(repo, nil), repo
	}

	t.Run("moving to another employee", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.Update(context.Background(), "a1", attendance.SaveAttendanceRequest{
			EmployeeID: "e2",
			Date:       "2026-06-01",
		})
		require.ErrorIs(t, err, apperr.ErrValidation)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "employee_id")
	})

	t.Run("moving to another day", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.Update(context.Background(), "a1", attendance.SaveAttendanceRequest{
			EmployeeID: "e1",
			Date:       "2026-06-02",
		})
		require.ErrorIs(t, err, apperr.ErrValidation)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "date")
	})

	t.Run("same identity recomputes hours", func(t *testing.T) {
		svc, repo := newService()
		got, err := svc.Update(context.Background(), "a1", attendance.SaveAttendanceRequest{
			EmployeeID:   "e1",
			Date:         "2026-06-01",
			CheckInTime:  strp("09:00"),
			CheckOutTime: strp("17:30"),
		})
		require.NoError(t, err)
		require.NotNil(t, got.HoursWorked)
		assert.InDelta(t, 8.5, *got.HoursWorked, 0.001)
		assert.Equal(t, "e1", repo.stored.EmployeeID)
	})
}
