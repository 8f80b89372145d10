package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/logger"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
	"badum_backend/internal/storage"
)

type MarketService struct {
	db        *gorm.DB
	adRepo    repositories.MarketAdRepository
	imageRepo repositories.MarketImageRepository
	userRepo  repositories.UserRepository
	store     storage.Storage
}

func NewMarketService(
	db *gorm.DB,
	adRepo repositories.MarketAdRepository,
	imageRepo repositories.MarketImageRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
) *MarketService {
	return &MarketService{
		db:        db,
		adRepo:    adRepo,
		imageRepo: imageRepo,
		userRepo:  userRepo,
		store:     store,
	}
}

// Create inserts the ad and attaches the uploaded images in one
// transaction. Images must belong to the caller and be unattached.
func (s *MarketService) Create(ctx context.Context, userID uint, req dto.CreateMarketAdRequest) (*dto.CreateAdResponse, error) {
	if err := s.checkImages(ctx, userID, 0, req.ImageIDs, req.CoverImageID); err != nil {
		return nil, err
	}

	ad := models.MarketAd{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		IsNew:            req.IsNew,
		PossibleExchange: req.PossibleExchange,
		CityID:           req.CityID,
		Price:            req.Price,
		PublishedAt:      time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adRepo.WithTx(tx).Create(ctx, &ad); err != nil {
			return err
		}
		return s.imageRepo.WithTx(tx).Attach(ctx, ad.ID, req.ImageIDs, req.CoverImageID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateAdResponse{AdID: ad.ID}, nil
}

func (s *MarketService) Search(ctx context.Context, filter repositories.MarketAdFilter) (*dto.Page[dto.MarketAdSummary], error) {
	ads, total, err := s.adRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items, err := s.summaries(ctx, ads)
	if err != nil {
		return nil, err
	}

	return &dto.Page[dto.MarketAdSummary]{
		Items: items,
		Total: total,
		Page:  maxInt(filter.Page, 1),
		Limit: maxInt(filter.Limit, 1),
	}, nil
}

func (s *MarketService) ListMy(ctx context.Context, userID uint) ([]dto.MarketAdSummary, error) {
	ads, err := s.adRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.summaries(ctx, ads)
}

// Get returns the ad with its author block and gallery, cover first.
func (s *MarketService) Get(ctx context.Context, adID uint) (*dto.MarketAdDetail, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Ad")
		}
		return nil, apperrors.InternalError(err)
	}

	detail := dto.MarketAdDetail{MarketAd: *ad}

	user, err := s.userRepo.GetByID(ctx, ad.UserID)
	if err != nil && !apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if user != nil {
		detail.AuthorName = user.Name
		detail.AuthorPhone = user.Phone
	}

	images, err := s.imageRepo.ListByAd(ctx, adID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	detail.Images = images

	return &detail, nil
}

// Update rewrites scalar fields and the gallery. Images dropped from
// image_ids are detached, their rows deleted and files unlinked; the
// remaining set is re-attached with the cover recomputed.
func (s *MarketService) Update(ctx context.Context, userID, adID uint, req dto.UpdateMarketAdRequest) error {
	ad, err := s.getOwned(ctx, userID, adID)
	if err != nil {
		return err
	}

	if err := s.checkImages(ctx, userID, adID, req.ImageIDs, req.CoverImageID); err != nil {
		return err
	}

	current, err := s.imageRepo.ListByAd(ctx, adID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	keep := make(map[uint]bool, len(req.ImageIDs))
	for _, id := range req.ImageIDs {
		keep[id] = true
	}
	var removed []models.MarketImage
	for _, img := range current {
		if !keep[img.ID] {
			removed = append(removed, img)
		}
	}

	ad.Title = req.Title
	ad.Description = req.Description
	ad.IsNew = req.IsNew
	ad.PossibleExchange = req.PossibleExchange
	ad.CityID = req.CityID
	ad.Price = req.Price

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adRepo.WithTx(tx).Update(ctx, ad); err != nil {
			return err
		}
		images := s.imageRepo.WithTx(tx)
		for _, img := range removed {
			if err := images.Delete(ctx, img.ID); err != nil {
				return err
			}
		}
		return images.Attach(ctx, adID, req.ImageIDs, req.CoverImageID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	for _, img := range removed {
		s.removeFiles(ctx, img.Path, img.ThumbnailPath)
	}
	return nil
}

// Delete removes the gallery rows and the ad in one transaction, then
// unlinks the files best-effort.
func (s *MarketService) Delete(ctx context.Context, userID, adID uint) error {
	if _, err := s.getOwned(ctx, userID, adID); err != nil {
		return err
	}

	images, err := s.imageRepo.ListByAd(ctx, adID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.imageRepo.WithTx(tx)
		for _, img := range images {
			if err := repo.Delete(ctx, img.ID); err != nil {
				return err
			}
		}
		return s.adRepo.WithTx(tx).Delete(ctx, adID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	for _, img := range images {
		s.removeFiles(ctx, img.Path, img.ThumbnailPath)
	}
	return nil
}

func (s *MarketService) getOwned(ctx context.Context, userID, adID uint) (*models.MarketAd, error) {
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

// checkImages verifies every referenced image exists, belongs to the
// caller and is either unattached or already attached to adID. The
// cover id must be part of the set.
func (s *MarketService) checkImages(ctx context.Context, userID, adID uint, imageIDs []uint, coverID *uint) error {
	if coverID != nil {
		found := false
		for _, id := range imageIDs {
			if id == *coverID {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewBadRequestError("cover_image_id must be one of image_ids")
		}
	}

	images, err := s.imageRepo.GetByIDs(ctx, imageIDs)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if len(images) != len(imageIDs) {
		return apperrors.NotFound("Image")
	}
	for _, img := range images {
		if img.OwnerID != userID {
			return apperrors.ErrForbidden
		}
		if img.AdID != nil && *img.AdID != adID {
			return apperrors.NewConflictError("Image is attached to another ad")
		}
	}
	return nil
}

func (s *MarketService) summaries(ctx context.Context, ads []models.MarketAd) ([]dto.MarketAdSummary, error) {
	ids := make([]uint, 0, len(ads))
	for _, ad := range ads {
		ids = append(ids, ad.ID)
	}
	covers, err := s.imageRepo.GetCoverForAds(ctx, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.MarketAdSummary, 0, len(ads))
	for _, ad := range ads {
		item := dto.MarketAdSummary{MarketAd: ad}
		if cover, ok := covers[ad.ID]; ok {
			thumb := cover.ThumbnailPath
			item.CoverThumbnail = &thumb
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *MarketService) removeFiles(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := s.store.Delete(ctx, path); err != nil {
			logger.CtxWarn(ctx, "delete stored file", "path", path, "error", err)
		}
	}
}
