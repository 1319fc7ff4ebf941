package services

import (
	"context"
	"fmt"

	"influBack/internal/models"
)

type ReviewStore interface {
	CreateReview(ctx context.Context, rev models.Review) (models.Review, error)
	GetReviewsByCampaignID(ctx context.Context, campaignID int) ([]models.Review, error)
}

type RatingUpdater interface {
	RecalculateRating(ctx context.Context, influencerID int) error
}

type ReviewService struct {
	ReviewRepo   ReviewStore
	CampaignRepo CampaignStore
	ProposalRepo ProposalStore
	Ratings      RatingUpdater
	Notifier     Notifier
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// SubmitReview records one review per reviewer for a completed campaign and
// refreshes the influencer's aggregate rating.
func (s *ReviewService) SubmitReview(ctx context.Context, reviewerID int, rev models.Review) (models.Review, error) {
	if !validRating(rev.CommunicationRating) || !validRating(rev.PerformanceRating) || !validRating(rev.OverallRating) {
		return models.Review{}, models.ErrRatingRequired
	}

	campaign, err := s.CampaignRepo.GetCampaignByID(ctx, rev.CampaignID)
	if err != nil {
		return models.Review{}, err
	}
	if campaign.Status != models.CampaignCompleted {
		return models.Review{}, models.ErrCampaignNotCompleted
	}

	brandUserID, influencerUserID, err := s.ProposalRepo.PartyUserIDs(ctx, campaign.ProposalID)
	if err != nil {
		return models.Review{}, err
	}
	if reviewerID != brandUserID {
		return models.Review{}, models.ErrForbidden
	}

	rev.ReviewerID = reviewerID
	created, err := s.ReviewRepo.CreateReview(ctx, rev)
	if err != nil {
		return models.Review{}, err
	}

	if s.Ratings != nil {
		if err := s.Ratings.RecalculateRating(ctx, campaign.InfluencerID); err != nil {
			return models.Review{}, fmt.Errorf("recalculate rating: %w", err)
		}
	}

	s.Notifier.Notify(ctx, influencerUserID, models.NotificationReview,
		"New review",
		fmt.Sprintf("You received a %d-star review", created.OverallRating))
	return created, nil
}

func (s *ReviewService) GetReviewsByCampaignID(ctx context.Context, campaignID int) ([]models.Review, error) {
	return s.ReviewRepo.GetReviewsByCampaignID(ctx, campaignID)
}
