package attendance

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrAttendanceNotFound = fmt.Errorf("attendance record not found: %w", apperr.ErrReference)
	ErrAttendanceExists   = fmt.Errorf("attendance record already exists for this employee and date: %w", apperr.ErrUniqueness)
)
