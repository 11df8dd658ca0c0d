package performance

import (
	"errors"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateReviewRequest() CreateReviewRequest {
	return CreateReviewRequest{
		EmployeeID:          "e1",
		ReviewerID:          "e2",
		ReviewPeriodStart:   "2026-01-01",
		ReviewPeriodEnd:     "2026-03-31",
		ReviewType:          "QUARTERLY",
		OverallRating:       4,
		GoalsAchievement:    4,
		QualityOfWork:       4,
		Communication:       4,
		Teamwork:            4,
		Strengths:           "Ships reliably",
		AreasForImprovement: "Delegation",
		GoalsForNextPeriod:  "Lead the migration project",
	}
}

func TestCreateReviewRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validCreateReviewRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("rating out of range", func(t *testing.T) {
		req := validCreateReviewRequest()
		req.Teamwork = 6
		err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "teamwork")
	})

	t.Run("zero rating rejected", func(t *testing.T) {
		req := validCreateReviewRequest()
		req.OverallRating = 0
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "overall_rating")
	})

	t.Run("optional leadership validated when set", func(t *testing.T) {
		req := validCreateReviewRequest()
		zero := 0
		req.Leadership = &zero
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "leadership")
	})

	t.Run("period start after end", func(t *testing.T) {
		req := validCreateReviewRequest()
		req.ReviewPeriodStart = "2026-04-01"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "review_period_start")
	})

	t.Run("unknown review type", func(t *testing.T) {
		req := validCreateReviewRequest()
		req.ReviewType = "WEEKLY"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "review_type")
	})
}
