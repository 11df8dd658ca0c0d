package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/dashboard"
)

const (
	recentLimit       = 5
	birthdayLookahead = 7
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

// GetOverview implements dashboard.DashboardService. Read-only; an
// empty store yields zero counts and empty slices.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.Overview, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	stats, err := s.dashboardRepo.GetStats(ctx, today)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	recentEmployees, err := s.dashboardRepo.ListRecentEmployees(ctx, recentLimit)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list recent employees: %w", err)
	}

	recentLeaveRequests, err := s.dashboardRepo.ListRecentLeaveRequests(ctx, recentLimit)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list recent leave requests: %w", err)
	}

	upcomingBirthdays, err := s.dashboardRepo.ListUpcomingBirthdays(ctx, today, birthdayLookahead, recentLimit)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list upcoming birthdays: %w", err)
	}

	if recentEmployees == nil {
		recentEmployees = []dashboard.RecentEmployee{}
	}
	if recentLeaveRequests == nil {
		recentLeaveRequests = []dashboard.RecentLeaveRequest{}
	}
	if upcomingBirthdays == nil {
		upcomingBirthdays = []dashboard.UpcomingBirthday{}
	}

	return dashboard.Overview{
		Stats:               stats,
		RecentEmployees:     recentEmployees,
		RecentLeaveRequests: recentLeaveRequests,
		UpcomingBirthdays:   upcomingBirthdays,
	}, nil
}
