package leave

import (
	"errors"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestRequestValidate(t *testing.T) {
	valid := CreateLeaveRequestRequest{
		EmployeeID:  "e1",
		LeaveTypeID: "lt1",
		StartDate:   "2026-08-10",
		EndDate:     "2026-08-14",
		Reason:      "Vacation",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("start after end", func(t *testing.T) {
		req := valid
		req.StartDate = "2026-08-20"
		err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "start_date")
	})

	t.Run("malformed dates", func(t *testing.T) {
		req := valid
		req.StartDate = "10/08/2026"
		req.EndDate = "not-a-date"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "start_date")
		assert.Contains(t, errs.ToMap(), "end_date")
	})

	t.Run("missing fields", func(t *testing.T) {
		err := (&CreateLeaveRequestRequest{}).Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		m := errs.ToMap()
		assert.Contains(t, m, "employee_id")
		assert.Contains(t, m, "leave_type_id")
		assert.Contains(t, m, "reason")
	})
}
