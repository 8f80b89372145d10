package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

type MarketImageRepository interface {
	Create(ctx context.Context, image *models.MarketImage) error
	GetByID(ctx context.Context, id uint) (*models.MarketImage, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.MarketImage, error)
	ListByAd(ctx context.Context, adID uint) ([]models.MarketImage, error)
	GetCoverForAds(ctx context.Context, adIDs []uint) (map[uint]models.MarketImage, error)
	Attach(ctx context.Context, adID uint, imageIDs []uint, coverID *uint) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) MarketImageRepository
}

type marketImageRepository struct {
	db *gorm.DB
}

func NewMarketImageRepository(db *gorm.DB) MarketImageRepository {
	return &marketImageRepository{db: db}
}

func (r *marketImageRepository) WithTx(tx *gorm.DB) MarketImageRepository {
	return &marketImageRepository{db: tx}
}

func (r *marketImageRepository) Create(ctx context.Context, image *models.MarketImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *marketImageRepository) GetByID(ctx context.Context, id uint) (*models.MarketImage, error) {
	var image models.MarketImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *marketImageRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.MarketImage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []models.MarketImage
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error
	return images, err
}

// ListByAd returns the gallery ordered cover first.
func (r *marketImageRepository) ListByAd(ctx context.Context, adID uint) ([]models.MarketImage, error) {
	var images []models.MarketImage
	err := r.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("is_cover DESC, id").
		Find(&images).Error
	return images, err
}

// GetCoverForAds loads the cover images for a page of ads in one query.
func (r *marketImageRepository) GetCoverForAds(ctx context.Context, adIDs []uint) (map[uint]models.MarketImage, error) {
	result := make(map[uint]models.MarketImage, len(adIDs))
	if len(adIDs) == 0 {
		return result, nil
	}
	var images []models.MarketImage
	err := r.db.WithContext(ctx).
		Where("ad_id IN ? AND is_cover = ?", adIDs, true).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		if img.AdID != nil {
			result[*img.AdID] = img
		}
	}
	return result, nil
}

// Attach binds the images to the ad and recomputes cover flags so at
// most one image carries is_cover.
func (r *marketImageRepository) Attach(ctx context.Context, adID uint, imageIDs []uint, coverID *uint) error {
	if len(imageIDs) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	err := db.Model(&models.MarketImage{}).
		Where("id IN ?", imageIDs).
		Updates(map[string]interface{}{"ad_id": adID, "is_cover": false}).Error
	if err != nil {
		return err
	}
	if coverID == nil {
		return nil
	}
	return db.Model(&models.MarketImage{}).
		Where("id = ? AND ad_id = ?", *coverID, adID).
		Update("is_cover", true).Error
}

func (r *marketImageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MarketImage{}, id).Error
}
