package performance

import "context"

type PerformanceReviewRepository interface {
	Create(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	List(ctx context.Context, filter ReviewFilter) ([]PerformanceReview, int64, error)
	Update(ctx context.Context, review PerformanceReview) error
	Delete(ctx context.Context, id string) error
}
