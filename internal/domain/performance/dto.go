package performance

import (
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID        string `json:"employee_id"`
	ReviewerID        string `json:"reviewer_id"`
	ReviewPeriodStart string `json:"review_period_start"`
	ReviewPeriodEnd   string `json:"review_period_end"`
	ReviewType        string `json:"review_type"`

	OverallRating    int  `json:"overall_rating"`
	GoalsAchievement int  `json:"goals_achievement"`
	QualityOfWork    int  `json:"quality_of_work"`
	Communication    int  `json:"communication"`
	Teamwork         int  `json:"teamwork"`
	Leadership       *int `json:"leadership"`

	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
	GoalsForNextPeriod  string `json:"goals_for_next_period"`
	EmployeeComments    string `json:"employee_comments"`
	AdditionalNotes     string `json:"additional_notes"`

	IsFinal bool `json:"is_final"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reviewer_id",
			Message: "reviewer_id is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.ReviewPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_start",
			Message: "review_period_start must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.ReviewPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_end",
			Message: "review_period_end must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_start",
			Message: "review period start cannot be after review period end",
		})
	}

	if r.ReviewType != "" && !validator.IsInSlice(r.ReviewType, ReviewTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_type",
			Message: "review_type must be one of ANNUAL, QUARTERLY, PROBATION, PROJECT, 360",
		})
	}

	mandatory := []struct {
		field  string
		rating int
	}{
		{"overall_rating", r.OverallRating},
		{"goals_achievement", r.GoalsAchievement},
		{"quality_of_work", r.QualityOfWork},
		{"communication", r.Communication},
		{"teamwork", r.Teamwork},
	}
	for _, m := range mandatory {
		if !validator.IsValidRating(m.rating) {
			errs = append(errs, validator.ValidationError{
				Field:   m.field,
				Message: "rating must be between 1 and 5",
			})
		}
	}

	if r.Leadership != nil && !validator.IsValidRating(*r.Leadership) {
		errs = append(errs, validator.ValidationError{
			Field:   "leadership",
			Message: "rating must be between 1 and 5",
		})
	}

	if validator.IsEmpty(r.Strengths) {
		errs = append(errs, validator.ValidationError{
			Field:   "strengths",
			Message: "strengths is required",
		})
	}

	if validator.IsEmpty(r.AreasForImprovement) {
		errs = append(errs, validator.ValidationError{
			Field:   "areas_for_improvement",
			Message: "areas_for_improvement is required",
		})
	}

	if validator.IsEmpty(r.GoalsForNextPeriod) {
		errs = append(errs, validator.ValidationError{
			Field:   "goals_for_next_period",
			Message: "goals_for_next_period is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewFilter struct {
	EmployeeID *string
	ReviewerID *string
	ReviewType *string
	Page       int
	Limit      int
}

type ReviewResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	ReviewerID        string  `json:"reviewer_id"`
	ReviewerName      *string `json:"reviewer_name,omitempty"`
	ReviewPeriodStart string  `json:"review_period_start"`
	ReviewPeriodEnd   string  `json:"review_period_end"`
	ReviewType        string  `json:"review_type"`

	OverallRating    int     `json:"overall_rating"`
	GoalsAchievement int     `json:"goals_achievement"`
	QualityOfWork    int     `json:"quality_of_work"`
	Communication    int     `json:"communication"`
	Teamwork         int     `json:"teamwork"`
	Leadership       *int    `json:"leadership,omitempty"`
	AverageRating    float64 `json:"average_rating"`

	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
	GoalsForNextPeriod  string `json:"goals_for_next_period"`
	EmployeeComments    string `json:"employee_comments,omitempty"`
	AdditionalNotes     string `json:"additional_notes,omitempty"`

	IsFinal   bool   `json:"is_final"`
	CreatedAt string `json:"created_at"`
}

type ListReviewsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Reviews    []ReviewResponse `json:"reviews"`
}

type UpdateReviewRequest struct {
	ID                string `json:"-"`
	ReviewPeriodStart string `json:"review_period_start"`
	ReviewPeriodEnd   string `json:"review_period_end"`
	ReviewType        string `json:"review_type"`

	OverallRating    int  `json:"overall_rating"`
	GoalsAchievement int  `json:"goals_achievement"`
	QualityOfWork    int  `json:"quality_of_work"`
	Communication    int  `json:"communication"`
	Teamwork         int  `json:"teamwork"`
	Leadership       *int `json:"leadership"`

	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
	GoalsForNextPeriod  string `json:"goals_for_next_period"`
	EmployeeComments    string `json:"employee_comments"`
	AdditionalNotes     string `json:"additional_notes"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.ReviewPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_start",
			Message: "review_period_start must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.ReviewPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_end",
			Message: "review_period_end must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_start",
			Message: "review period start cannot be after review period end",
		})
	}

	if r.ReviewType != "" && !validator.IsInSlice(r.ReviewType, ReviewTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_type",
			Message: "review_type must be one of ANNUAL, QUARTERLY, PROBATION, PROJECT, 360",
		})
	}

	mandatory := []struct {
		field  string
		rating int
	}{
		{"overall_rating", r.OverallRating},
		{"goals_achievement", r.GoalsAchievement},
		{"quality_of_work", r.QualityOfWork},
		{"communication", r.Communication},
		{"teamwork", r.Teamwork},
	}
	for _, m := range mandatory {
		if !validator.IsValidRating(m.rating) {
			errs = append(errs, validator.ValidationError{
				Field:   m.field,
				Message: "rating must be between 1 and 5",
			})
		}
	}

	if r.Leadership != nil && !validator.IsValidRating(*r.Leadership) {
		errs = append(errs, validator.ValidationError{
			Field:   "leadership",
			Message: "rating must be between 1 and 5",
		})
	}

	if validator.IsEmpty(r.Strengths) {
		errs = append(errs, validator.ValidationError{
			Field:   "strengths",
			Message: "strengths is required",
		})
	}

	if validator.IsEmpty(r.AreasForImprovement) {
		errs = append(errs, validator.ValidationError{
			Field:   "areas_for_improvement",
			Message: "areas_for_improvement is required",
		})
	}

	if validator.IsEmpty(r.GoalsForNextPeriod) {
		errs = append(errs, validator.ValidationError{
			Field:   "goals_for_next_period",
			Message: "goals_for_next_period is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
