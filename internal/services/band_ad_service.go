package services

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

type BandAdService struct {
	db         *gorm.DB
	adRepo     repositories.BandAdRepository
	bandRepo   repositories.BandRepository
	authorizer *Authorizer
}

func NewBandAdService(db *gorm.DB, adRepo repositories.BandAdRepository, bandRepo repositories.BandRepository, authorizer *Authorizer) *BandAdService {
	return &BandAdService{
		db:         db,
		adRepo:     adRepo,
		bandRepo:   bandRepo,
		authorizer: authorizer,
	}
}

// Create requires the admin or moderator role in the owning band.
func (s *BandAdService) Create(ctx context.Context, principalID, bandID uint, req dto.CreateBandAdRequest) (*dto.CreateAdResponse, error) {
	if err := s.authorizer.RequireBandRole(ctx, principalID, bandID, models.RoleAdmin, models.RoleModerator); err != nil {
		return nil, err
	}

	if _, err := s.bandRepo.GetByID(ctx, bandID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Band")
		}
		return nil, apperrors.InternalError(err)
	}

	ad := models.BandAd{
		BandID:       bandID,
		InstrumentID: req.InstrumentID,
		Description:  req.Description,
		Experience:   req.Experience,
		ExpAction:    req.ExpAction,
		SelfInstr:    req.SelfInstr,
		Status:       models.AdStatusActive,
	}
	if err := s.adRepo.Create(ctx, &ad); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CreateAdResponse{AdID: ad.ID}, nil
}

func (s *BandAdService) ListByBand(ctx context.Context, bandID uint) ([]models.BandAd, error) {
	if _, err := s.bandRepo.GetByID(ctx, bandID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Band")
		}
		return nil, apperrors.InternalError(err)
	}

	ads, err := s.adRepo.ListByBand(ctx, bandID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ads, nil
}

// Delete requires the admin or moderator role in the owning band.
func (s *BandAdService) Delete(ctx context.Context, principalID, adID uint) error {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Ad")
		}
		return apperrors.InternalError(err)
	}

	if err := s.authorizer.RequireBandRole(ctx, principalID, ad.BandID, models.RoleAdmin, models.RoleModerator); err != nil {
		return err
	}

	if err := s.adRepo.Delete(ctx, adID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
