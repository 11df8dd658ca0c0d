package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeOfDay(hour, min int) *time.Time {
	t := time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)
	return &t
}

func TestComputeHours(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		checkIn       *time.Time
		checkOut      *time.Time
		breakDuration float64
		wantHours     *float64
		wantOvertime  float64
	}{
		{
			name:          "regular day with break",
			checkIn:       timeOfDay(9, 0),
			checkOut:      timeOfDay(17, 30),
			breakDuration: 0.5,
			wantHours:     f64(8),
			wantOvertime:  0,
		},
		{
			name:         "long day accrues overtime",
			checkIn:      timeOfDay(8, 0),
			checkOut:     timeOfDay(19, 0),
			wantHours:    f64(11),
			wantOvertime: 3,
		},
		{
			name:         "overnight shift crosses midnight",
			checkIn:      timeOfDay(22, 0),
			checkOut:     timeOfDay(2, 0),
			wantHours:    f64(4),
			wantOvertime: 0,
		},
		{
			name:      "missing check-out leaves hours unset",
			checkIn:   timeOfDay(9, 0),
			wantHours: nil,
		},
		{
			name:      "missing check-in leaves hours unset",
			checkOut:  timeOfDay(17, 0),
			wantHours: nil,
		},
		{
			name:      "no times at all",
			wantHours: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attendance{
				Date:          date,
				CheckInTime:   tt.checkIn,
				CheckOutTime:  tt.checkOut,
				BreakDuration: tt.breakDuration,
			}
			a.ComputeHours()

			if tt.wantHours == nil {
				assert.Nil(t, a.HoursWorked)
			} else {
				require.NotNil(t, a.HoursWorked)
				assert.InDelta(t, *tt.wantHours, *a.HoursWorked, 0.0001)
			}
			assert.InDelta(t, tt.wantOvertime, a.OvertimeHours, 0.0001)
		})
	}
}

func TestComputeHoursResetsStaleValues(t *testing.T) {
	a := Attendance{
		Date:          time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckInTime:   timeOfDay(8, 0),
		CheckOutTime:  timeOfDay(19, 0),
		OvertimeHours: 99,
	}
	a.ComputeHours()
	require.NotNil(t, a.HoursWorked)
	assert.InDelta(t, 3, a.OvertimeHours, 0.0001)

	// Clearing the check-out must also clear the derived fields.
	a.CheckOutTime = nil
	a.ComputeHours()
	assert.Nil(t, a.HoursWorked)
	assert.Zero(t, a.OvertimeHours)
}

func f64(v float64) *float64 {
	return &v
}
