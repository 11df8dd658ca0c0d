package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req SaveAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendancesResponse, error)
	Update(ctx context.Context, id string, req SaveAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
