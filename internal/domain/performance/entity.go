package performance

import "time"

type ReviewType string

const (
	ReviewTypeAnnual    ReviewType = "ANNUAL"
	ReviewTypeQuarterly ReviewType = "QUARTERLY"
	ReviewTypeProbation ReviewType = "PROBATION"
	ReviewTypeProject   ReviewType = "PROJECT"
	ReviewType360       ReviewType = "360"
)

var ReviewTypes = []string{
	string(ReviewTypeAnnual),
	string(ReviewTypeQuarterly),
	string(ReviewTypeProbation),
	string(ReviewTypeProject),
	string(ReviewType360),
}

// PerformanceReview entity
type PerformanceReview struct {
	ID         string
	EmployeeID string
	ReviewerID string

	ReviewPeriodStart time.Time
	ReviewPeriodEnd   time.Time
	ReviewType        ReviewType

	OverallRating    int
	GoalsAchievement int
	QualityOfWork    int
	Communication    int
	Teamwork         int
	Leadership       *int

	Strengths           string
	AreasForImprovement string
	GoalsForNextPeriod  string
	EmployeeComments    string
	AdditionalNotes     string

	IsFinal   bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
	ReviewerName *string
}

// AverageRating is the mean of the five mandatory ratings. The
// leadership rating joins both numerator and divisor only when set.
func (r PerformanceReview) AverageRating() float64 {
	sum := r.OverallRating + r.GoalsAchievement + r.QualityOfWork + r.Communication + r.Teamwork
	count := 5
	if r.Leadership != nil {
		sum += *r.Leadership
		count++
	}
	return float64(sum) / float64(count)
}
