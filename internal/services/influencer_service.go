package services

import (
	"context"

	"influBack/internal/models"
	"influBack/internal/repositories"
)

type InfluencerService struct {
	InfluencerRepo *repositories.InfluencerRepository
}

func (s *InfluencerService) GetInfluencerByID(ctx context.Context, id int) (models.Influencer, error) {
	return s.InfluencerRepo.GetInfluencerByID(ctx, id)
}

func (s *InfluencerService) GetInfluencerByUserID(ctx context.Context, userID int) (models.Influencer, error) {
	return s.InfluencerRepo.GetInfluencerByUserID(ctx, userID)
}

func (s *InfluencerService) GetInfluencers(ctx context.Context, filter models.InfluencerFilter) ([]models.Influencer, error) {
	return s.InfluencerRepo.GetInfluencers(ctx, filter)
}

// UpdateProfile lets an influencer edit their own profile only.
func (s *InfluencerService) UpdateProfile(ctx context.Context, callerUserID int, inf models.Influencer) (models.Influencer, error) {
	current, err := s.InfluencerRepo.GetInfluencerByUserID(ctx, callerUserID)
	if err != nil {
		return models.Influencer{}, err
	}
	inf.ID = current.ID
	inf.UserID = current.UserID
	if err := s.InfluencerRepo.UpdateInfluencer(ctx, inf); err != nil {
		return models.Influencer{}, err
	}
	return s.InfluencerRepo.GetInfluencerByID(ctx, current.ID)
}
