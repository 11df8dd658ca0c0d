package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	review := PerformanceReview{
		OverallRating:    4,
		GoalsAchievement: 5,
		QualityOfWork:    3,
		Communication:    4,
		Teamwork:         4,
	}

	// Five mandatory ratings only: (4+5+3+4+4)/5.
	assert.InDelta(t, 4.0, review.AverageRating(), 0.0001)

	// Leadership joins both numerator and divisor.
	leadership := 1
	review.Leadership = &leadership
	assert.InDelta(t, 21.0/6.0, review.AverageRating(), 0.0001)
}
