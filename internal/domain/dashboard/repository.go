package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	GetStats(ctx context.Context, today time.Time) (Stats, error)
	ListRecentEmployees(ctx context.Context, limit int) ([]RecentEmployee, error)
	ListRecentLeaveRequests(ctx context.Context, limit int) ([]RecentLeaveRequest, error)
	ListUpcomingBirthdays(ctx context.Context, today time.Time, days, limit int) ([]UpcomingBirthday, error)
}
