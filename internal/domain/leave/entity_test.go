package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.July, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(6), day(6), 1},
		{"full week", day(6), day(10), 5},
		{"month boundary", time.Date(2026, time.July, 30, 0, 0, 0, 0, time.UTC), time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := LeaveRequest{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, r.DurationDays())
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from LeaveRequestStatus
		to   LeaveRequestStatus
		want bool
	}{
		{LeaveStatusPending, LeaveStatusApproved, true},
		{LeaveStatusPending, LeaveStatusRejected, true},
		{LeaveStatusPending, LeaveStatusCancelled, true},
		{LeaveStatusApproved, LeaveStatusCancelled, true},
		{LeaveStatusRejected, LeaveStatusCancelled, true},
		{LeaveStatusApproved, LeaveStatusRejected, false},
		{LeaveStatusRejected, LeaveStatusApproved, false},
		{LeaveStatusApproved, LeaveStatusPending, false},
		{LeaveStatusCancelled, LeaveStatusPending, false},
		{LeaveStatusCancelled, LeaveStatusApproved, false},
		{LeaveStatusCancelled, LeaveStatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
