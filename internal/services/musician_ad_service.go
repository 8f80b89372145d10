package services

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

type MusicianAdService struct {
	db         *gorm.DB
	adRepo     repositories.MusicianAdRepository
	authorizer *Authorizer
}

func NewMusicianAdService(db *gorm.DB, adRepo repositories.MusicianAdRepository, authorizer *Authorizer) *MusicianAdService {
	return &MusicianAdService{
		db:         db,
		adRepo:     adRepo,
		authorizer: authorizer,
	}
}

func (s *MusicianAdService) ListMy(ctx context.Context, userID uint) ([]dto.MusicianAdResponse, error) {
	ads, err := s.adRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]uint, 0, len(ads))
	for _, ad := range ads {
		ids = append(ids, ad.ID)
	}
	genres, err := s.adRepo.GetGenreIDsForAds(ctx, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MusicianAdResponse, 0, len(ads))
	for _, ad := range ads {
		result = append(result, dto.MusicianAdResponse{
			MusicianAd: ad,
			GenreIDs:   genreSet(genres, ad.ID),
		})
	}
	return result, nil
}

// GetMy returns the caller's ad. A foreign ad reads as NotFound so the
// response does not reveal whether the id exists.
func (s *MusicianAdService) GetMy(ctx context.Context, userID, adID uint) (*dto.MusicianAdResponse, error) {
	ad, err := s.getOwned(ctx, userID, adID)
	if err != nil {
		return nil, err
	}

	genreIDs, err := s.adRepo.GetGenreIDs(ctx, adID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MusicianAdResponse{MusicianAd: *ad, GenreIDs: genreIDs}, nil
}

// Create inserts the ad and its genre set in one transaction.
func (s *MusicianAdService) Create(ctx context.Context, userID uint, req dto.CreateMusicianAdRequest) (*dto.CreateAdResponse, error) {
	ad := models.MusicianAd{
		UserID:       userID,
		InstrumentID: req.InstrumentID,
		Description:  req.Description,
		CityID:       req.CityID,
		Experience:   req.Experience,
		Status:       models.AdStatusActive,
	}
	applyAdFlags(&ad, req)
	if err := s.insert(ctx, &ad, req.GenreIDs); err != nil {
		return nil, err
	}
	return &dto.CreateAdResponse{AdID: ad.ID}, nil
}

// AdminCreate publishes an ad on behalf of a target user, optionally
// carrying applicant contact details. Platform-admin only.
func (s *MusicianAdService) AdminCreate(ctx context.Context, principalID uint, req dto.AdminCreateMusicianAdRequest) (*dto.CreateAdResponse, error) {
	if err := s.authorizer.RequireAdmin(ctx, principalID); err != nil {
		return nil, err
	}

	ad := models.MusicianAd{
		UserID:         req.UserID,
		InstrumentID:   req.InstrumentID,
		Description:    req.Description,
		CityID:         req.CityID,
		Experience:     req.Experience,
		Status:         models.AdStatusActive,
		ApplicantName:  req.ApplicantName,
		ApplicantPhone: req.ApplicantPhone,
	}
	applyAdFlags(&ad, req.CreateMusicianAdRequest)
	if err := s.insert(ctx, &ad, req.GenreIDs); err != nil {
		return nil, err
	}
	return &dto.CreateAdResponse{AdID: ad.ID}, nil
}

// Update rewrites scalar fields and the genre set in one transaction.
func (s *MusicianAdService) Update(ctx context.Context, userID, adID uint, req dto.UpdateMusicianAdRequest) (*dto.MusicianAdResponse, error) {
	ad, err := s.getOwned(ctx, userID, adID)
	if err != nil {
		return nil, err
	}

	ad.InstrumentID = req.InstrumentID
	ad.Description = req.Description
	ad.CityID = req.CityID
	ad.Experience = req.Experience
	applyAdFlags(ad, req)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.adRepo.WithTx(tx)
		if err := repo.Update(ctx, ad); err != nil {
			return err
		}
		return repo.ReplaceGenres(ctx, adID, req.GenreIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetMy(ctx, userID, adID)
}

func (s *MusicianAdService) Delete(ctx context.Context, userID, adID uint) error {
	if _, err := s.getOwned(ctx, userID, adID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.adRepo.WithTx(tx)
		if err := repo.DeleteGenres(ctx, adID); err != nil {
			return err
		}
		return repo.Delete(ctx, adID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MusicianAdService) insert(ctx context.Context, ad *models.MusicianAd, genreIDs []uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.adRepo.WithTx(tx)
		if err := repo.Create(ctx, ad); err != nil {
			return err
		}
		return repo.ReplaceGenres(ctx, ad.ID, genreIDs)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MusicianAdService) getOwned(ctx context.Context, userID, adID uint) (*models.MusicianAd, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Ad")
		}
		return nil, apperrors.InternalError(err)
	}
	if ad.UserID != userID {
		return nil, apperrors.NotFound("Ad")
	}
	return ad, nil
}

// applyAdFlags copies the preference flags from the request onto the ad.
func applyAdFlags(ad *models.MusicianAd, req dto.CreateMusicianAdRequest) {
	ad.ExpAction = req.ExpAction
	ad.SelfInstr = req.SelfInstr
	ad.ExpBand = req.ExpBand
	ad.ExpBandAction = req.ExpBandAction
	ad.Base = req.Base
	ad.SelfCreation = req.SelfCreation
	ad.ComProject = req.ComProject
	ad.CoverBand = req.CoverBand
}

func genreSet(m map[uint][]uint, adID uint) []uint {
	if ids, ok := m[adID]; ok {
		return ids
	}
	return []uint{}
}
