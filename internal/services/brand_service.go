package services

import (
	"context"

	"influBack/internal/models"
	"influBack/internal/repositories"
)

type BrandService struct {
	BrandRepo *repositories.BrandRepository
}

func (s *BrandService) GetBrandByID(ctx context.Context, id int) (models.Brand, error) {
	return s.BrandRepo.GetBrandByID(ctx, id)
}

func (s *BrandService) GetBrandByUserID(ctx context.Context, userID int) (models.Brand, error) {
	return s.BrandRepo.GetBrandByUserID(ctx, userID)
}

func (s *BrandService) UpdateProfile(ctx context.Context, callerUserID int, brand models.Brand) (models.Brand, error) {
	current, err := s.BrandRepo.GetBrandByUserID(ctx, callerUserID)
	if err != nil {
		return models.Brand{}, err
	}
	brand.ID = current.ID
	brand.UserID = current.UserID
	if err := s.BrandRepo.UpdateBrand(ctx, brand); err != nil {
		return models.Brand{}, err
	}
	return s.BrandRepo.GetBrandByID(ctx, current.ID)
}
