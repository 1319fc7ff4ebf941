package repositories

import (
	"context"
	"database/sql"
	"strings"

	"influBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// CreateReview inserts one review per reviewer per campaign; the unique key
// turns a resubmission into ErrAlreadyReviewed.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	query := `
		INSERT INTO reviews (campaign_id, reviewer_id, communication_rating, performance_rating, overall_rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		rev.CampaignID, rev.ReviewerID, rev.CommunicationRating, rev.PerformanceRating, rev.OverallRating, rev.Comment,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return models.Review{}, models.ErrAlreadyReviewed
		}
		return models.Review{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	rev.ID = int(id)
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByCampaignID(ctx context.Context, campaignID int) ([]models.Review, error) {
	query := `
		SELECT id, campaign_id, reviewer_id, communication_rating, performance_rating, overall_rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE campaign_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(
			&rev.ID, &rev.CampaignID, &rev.ReviewerID,
			&rev.CommunicationRating, &rev.PerformanceRating, &rev.OverallRating,
			&rev.Comment, &rev.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
