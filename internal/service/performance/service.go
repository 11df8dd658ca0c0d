package performance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

type PerformanceServiceImpl struct {
	reviewRepo   performance.PerformanceReviewRepository
	employeeRepo employee.EmployeeRepository
}

func NewPerformanceService(
	reviewRepo performance.PerformanceReviewRepository,
	employeeRepo employee.EmployeeRepository,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

func mapReviewToResponse(r performance.PerformanceReview) performance.ReviewResponse {
	return performance.ReviewResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		ReviewerID:        r.ReviewerID,
		ReviewerName:      r.ReviewerName,
		ReviewPeriodStart: r.ReviewPeriodStart.Format("2006-01-02"),
		ReviewPeriodEnd:   r.ReviewPeriodEnd.Format("2006-01-02"),
		ReviewType:        string(r.ReviewType),

		OverallRating:    r.OverallRating,
		GoalsAchievement: r.GoalsAchievement,
		QualityOfWork:    r.QualityOfWork,
		Communication:    r.Communication,
		Teamwork:         r.Teamwork,
		Leadership:       r.Leadership,
		AverageRating:    r.AverageRating(),

		Strengths:           r.Strengths,
		AreasForImprovement: r.AreasForImprovement,
		GoalsForNextPeriod:  r.GoalsForNextPeriod,
		EmployeeComments:    r.EmployeeComments,
		AdditionalNotes:     r.AdditionalNotes,

		IsFinal:   r.IsFinal,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	for _, id := range []string{req.EmployeeID, req.ReviewerID} {
		if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return performance.ReviewResponse{}, employee.ErrEmployeeNotFound
			}
			return performance.ReviewResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
	}

	periodStart, _ := time.Parse("2006-01-02", req.ReviewPeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.ReviewPeriodEnd)

	reviewType := performance.ReviewTypeAnnual
	if req.ReviewType != "" {
		reviewType = performance.ReviewType(req.ReviewType)
	}

	entity := performance.PerformanceReview{
		EmployeeID:        req.EmployeeID,
		ReviewerID:        req.ReviewerID,
		ReviewPeriodStart: periodStart,
		ReviewPeriodEnd:   periodEnd,
		ReviewType:        reviewType,

		OverallRating:    req.OverallRating,
		GoalsAchievement: req.GoalsAchievement,
		QualityOfWork:    req.QualityOfWork,
		Communication:    req.Communication,
		Teamwork:         req.Teamwork,
		Leadership:       req.Leadership,

		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		GoalsForNextPeriod:  req.GoalsForNextPeriod,
		EmployeeComments:    req.EmployeeComments,
		AdditionalNotes:     req.AdditionalNotes,

		IsFinal: req.IsFinal,
	}

	created, err := s.reviewRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation
				return performance.ReviewResponse{}, employee.ErrEmployeeNotFound
			case "23514": // check_violation
				return performance.ReviewResponse{}, fmt.Errorf("rating outside allowed range: %w", apperr.ErrValidation)
			}
		}
		return performance.ReviewResponse{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Get(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.ReviewResponse{}, performance.ErrReviewNotFound
		}
		return performance.ReviewResponse{}, fmt.Errorf("failed to get performance review: %w", err)
	}
	return mapReviewToResponse(review), nil
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context, filter performance.ReviewFilter) (performance.ListReviewsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return performance.ListReviewsResponse{}, fmt.Errorf("failed to list performance reviews: %w", err)
	}

	results := make([]performance.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, mapReviewToResponse(review))
	}

	return performance.ListReviewsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Reviews:    results,
	}, nil
}

// Update implements performance.PerformanceService. Finalized reviews
// are immutable.
func (s *PerformanceServiceImpl) Update(ctx context.Context, req performance.UpdateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	existing, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.ReviewResponse{}, performance.ErrReviewNotFound
		}
		return performance.ReviewResponse{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	if existing.IsFinal {
		return performance.ReviewResponse{}, performance.ErrReviewFinal
	}

	startDate, _ := time.Parse("2006-01-02", req.ReviewPeriodStart)
	endDate, _ := time.Parse("2006-01-02", req.ReviewPeriodEnd)

	existing.ReviewPeriodStart = startDate
	existing.ReviewPeriodEnd = endDate
	if req.ReviewType != "" {
		existing.ReviewType = performance.ReviewType(req.ReviewType)
	}
	existing.OverallRating = req.OverallRating
	existing.GoalsAchievement = req.GoalsAchievement
	existing.QualityOfWork = req.QualityOfWork
	existing.Communication = req.Communication
	existing.Teamwork = req.Teamwork
	existing.Leadership = req.Leadership
	existing.Strengths = req.Strengths
	existing.AreasForImprovement = req.AreasForImprovement
	existing.GoalsForNextPeriod = req.GoalsForNextPeriod
	existing.EmployeeComments = req.EmployeeComments
	existing.AdditionalNotes = req.AdditionalNotes

	if err := s.reviewRepo.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return performance.ReviewResponse{}, fmt.Errorf("rating outside allowed range: %w", apperr.ErrValidation)
		}
		return performance.ReviewResponse{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Finalize implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Finalize(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.ReviewResponse{}, performance.ErrReviewNotFound
		}
		return performance.ReviewResponse{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	if review.IsFinal {
		return performance.ReviewResponse{}, performance.ErrReviewFinal
	}

	review.IsFinal = true
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to finalize performance review: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	return nil
}
