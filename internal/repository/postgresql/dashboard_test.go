package postgresql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBirthdayEmployee(t *testing.T, repo employee.EmployeeRepository, dob time.Time) employee.Employee {
	t.Helper()
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{
		EmployeeID:       employee.NewEmployeeID(),
		FirstName:        "Birthday",
		LastName:         fmt.Sprintf("Case%d", time.Now().UnixNano()),
		DateOfBirth:      &dob,
		HireDate:         time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.StatusActive,
		SalaryCurrency:   "USD",
		IsActive:         true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(ctx, created.ID) })
	return created
}

func birthdayIDs(list []dashboard.UpcomingBirthday) map[string]bool {
	ids := make(map[string]bool, len(list))
	for _, b := range list {
		ids[b.ID] = true
	}
	return ids
}

func TestListUpcomingBirthdaysSameMonth(t *testing.T) {
	db := testDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inside := seedBirthdayEmployee(t, empRepo, time.Date(1991, 3, 15, 0, 0, 0, 0, time.UTC))
	outside := seedBirthdayEmployee(t, empRepo, time.Date(1988, 3, 25, 0, 0, 0, 0, time.UTC))

	got, err := repo.ListUpcomingBirthdays(ctx, today, 7, 1000)
	require.NoError(t, err)

	ids := birthdayIDs(got)
	assert.True(t, ids[inside.ID], "birthday inside the window should be listed")
	assert.False(t, ids[outside.ID], "birthday past the window should not be listed")
}

func TestListUpcomingBirthdaysAcrossMonthBoundary(t *testing.T) {
	db := testDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	// Jan 29 + 7 days reaches Feb 5, so the window splits across the
	// month boundary.
	today := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)
	tail := seedBirthdayEmployee(t, empRepo, time.Date(1990, 1, 31, 0, 0, 0, 0, time.UTC))
	head := seedBirthdayEmployee(t, empRepo, time.Date(1985, 2, 3, 0, 0, 0, 0, time.UTC))
	outside := seedBirthdayEmployee(t, empRepo, time.Date(1992, 2, 10, 0, 0, 0, 0, time.UTC))
	before := seedBirthdayEmployee(t, empRepo, time.Date(1987, 1, 20, 0, 0, 0, 0, time.UTC))

	got, err := repo.ListUpcomingBirthdays(ctx, today, 7, 1000)
	require.NoError(t, err)

	ids := birthdayIDs(got)
	assert.True(t, ids[tail.ID], "end of the current month should be listed")
	assert.True(t, ids[head.ID], "start of the next month should be listed")
	assert.False(t, ids[outside.ID], "next month past the window should not be listed")
	assert.False(t, ids[before.ID], "earlier this month should not be listed")
}
