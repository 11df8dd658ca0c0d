package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type performanceReviewRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceReviewRepository(db *database.DB) performance.PerformanceReviewRepository {
	return &performanceReviewRepositoryImpl{db: db}
}

const reviewSelect = `
	SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.review_period_start, pr.review_period_end, pr.review_type,
		   pr.overall_rating, pr.goals_achievement, pr.quality_of_work, pr.communication, pr.teamwork, pr.leadership,
		   pr.strengths, pr.areas_for_improvement, pr.goals_for_next_period, pr.employee_comments, pr.additional_notes,
		   pr.is_final, pr.created_at, pr.updated_at,
		   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name),
		   CONCAT_WS(' ', rv.first_name, NULLIF(rv.middle_name, ''), rv.last_name)
	FROM performance_reviews pr
	JOIN employees e ON e.id = pr.employee_id
	JOIN employees rv ON rv.id = pr.reviewer_id
`

func scanReview(row pgx.Row, r *performance.PerformanceReview) error {
	return row.Scan(
		&r.ID, &r.EmployeeID, &r.ReviewerID, &r.ReviewPeriodStart, &r.ReviewPeriodEnd, &r.ReviewType,
		&r.OverallRating, &r.GoalsAchievement, &r.QualityOfWork, &r.Communication, &r.Teamwork, &r.Leadership,
		&r.Strengths, &r.AreasForImprovement, &r.GoalsForNextPeriod, &r.EmployeeComments, &r.AdditionalNotes,
		&r.IsFinal, &r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeName, &r.ReviewerName,
	)
}

// Create implements performance.PerformanceReviewRepository.
func (p *performanceReviewRepositoryImpl) Create(ctx context.Context, review performance.PerformanceReview) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, p.db)
	query := `
		INSERT INTO performance_reviews (
			employee_id, reviewer_id, review_period_start, review_period_end, review_type,
			overall_rating, goals_achievement, quality_of_work, communication, teamwork, leadership,
			strengths, areas_for_improvement, goals_for_next_period, employee_comments, additional_notes,
			is_final
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		review.EmployeeID, review.ReviewerID, review.ReviewPeriodStart, review.ReviewPeriodEnd, review.ReviewType,
		review.OverallRating, review.GoalsAchievement, review.QualityOfWork, review.Communication, review.Teamwork, review.Leadership,
		review.Strengths, review.AreasForImprovement, review.GoalsForNextPeriod, review.EmployeeComments, review.AdditionalNotes,
		review.IsFinal,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return performance.PerformanceReview{}, err
	}
	return review, nil
}

// GetByID implements performance.PerformanceReviewRepository.
func (p *performanceReviewRepositoryImpl) GetByID(ctx context.Context, id string) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, p.db)
	var review performance.PerformanceReview
	err := scanReview(q.QueryRow(ctx, reviewSelect+` WHERE pr.id = $1`, id), &review)
	if err != nil {
		return performance.PerformanceReview{}, err
	}
	return review, nil
}

// List implements performance.PerformanceReviewRepository.
func (p *performanceReviewRepositoryImpl) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.PerformanceReview, int64, error) {
	q := GetQuerier(ctx, p.db)

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", len(args)))
	}
	if filter.ReviewerID != nil {
		args = append(args, *filter.ReviewerID)
		conditions = append(conditions, fmt.Sprintf("pr.reviewer_id = $%d", len(args)))
	}
	if filter.ReviewType != nil {
		args = append(args, *filter.ReviewType)
		conditions = append(conditions, fmt.Sprintf("pr.review_type = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM performance_reviews pr` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := reviewSelect + where + ` ORDER BY pr.review_period_end DESC`
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []performance.PerformanceReview
	for rows.Next() {
		var review performance.PerformanceReview
		if err := scanReview(rows, &review); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}
	return reviews, total, rows.Err()
}

// Update implements performance.PerformanceReviewRepository.
func (p *performanceReviewRepositoryImpl) Update(ctx context.Context, review performance.PerformanceReview) error {
	q := GetQuerier(ctx, p.db)
	query := `
		UPDATE performance_reviews
		SET review_period_start = $2, review_period_end = $3, review_type = $4,
			overall_rating = $5, goals_achievement = $6, quality_of_work = $7,
			communication = $8, teamwork = $9, leadership = $10,
			strengths = $11, areas_for_improvement = $12, goals_for_next_period = $13,
			employee_comments = $14, additional_notes = $15, is_final = $16,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		review.ID, review.ReviewPeriodStart, review.ReviewPeriodEnd, review.ReviewType,
		review.OverallRating, review.GoalsAchievement, review.QualityOfWork,
		review.Communication, review.Teamwork, review.Leadership,
		review.Strengths, review.AreasForImprovement, review.GoalsForNextPeriod,
		review.EmployeeComments, review.AdditionalNotes, review.IsFinal,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("performance review with id %s not found", review.ID)
	}
	return nil
}

// Delete implements performance.PerformanceReviewRepository.
func (p *performanceReviewRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)
	tag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("performance review with id %s not found", id)
	}
	return nil
}
