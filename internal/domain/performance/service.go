package performance

import "context"

type PerformanceService interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	Get(ctx context.Context, id string) (ReviewResponse, error)
	List(ctx context.Context, filter ReviewFilter) (ListReviewsResponse, error)
	Update(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)
	Finalize(ctx context.Context, id string) (ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}
