package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

// BandAdFilter holds the optional public-search filters for band ads.
// The genre and city filters apply to the owning band.
type BandAdFilter struct {
	InstrumentID *uint
	GenreID      *uint
	CityID       *uint
	Experience   *int
	Page         int
	Limit        int
}

type BandAdRepository interface {
	Create(ctx context.Context, ad *models.BandAd) error
	GetByID(ctx context.Context, id uint) (*models.BandAd, error)
	Update(ctx context.Context, ad *models.BandAd) error
	Delete(ctx context.Context, id uint) error
	ListByBand(ctx context.Context, bandID uint) ([]models.BandAd, error)
	DeleteByBand(ctx context.Context, bandID uint) error
	Search(ctx context.Context, filter BandAdFilter) ([]models.BandAd, int64, error)
	WithTx(tx *gorm.DB) BandAdRepository
}

type bandAdRepository struct {
	db *gorm.DB
}

func NewBandAdRepository(db *gorm.DB) BandAdRepository {
	return &bandAdRepository{db: db}
}

func (r *bandAdRepository) WithTx(tx *gorm.DB) BandAdRepository {
	return &bandAdRepository{db: tx}
}

func (r *bandAdRepository) Create(ctx context.Context, ad *models.BandAd) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *bandAdRepository) GetByID(ctx context.Context, id uint) (*models.BandAd, error) {
	var ad models.BandAd
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ad, nil
}

func (r *bandAdRepository) Update(ctx context.Context, ad *models.BandAd) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *bandAdRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BandAd{}, id).Error
}

func (r *bandAdRepository) ListByBand(ctx context.Context, bandID uint) ([]models.BandAd, error) {
	var ads []models.BandAd
	err := r.db.WithContext(ctx).
		Where("band_id = ?", bandID).
		Order("id DESC").
		Find(&ads).Error
	return ads, err
}

func (r *bandAdRepository) DeleteByBand(ctx context.Context, bandID uint) error {
	return r.db.WithContext(ctx).
		Where("band_id = ?", bandID).
		Delete(&models.BandAd{}).Error
}

func (r *bandAdRepository) filtered(ctx context.Context, filter BandAdFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.BandAd{}).
		Joins("JOIN bands ON bands.id = band_ads.band_id")
	if filter.GenreID != nil {
		q = q.Joins("JOIN band_genres ON band_genres.band_id = bands.id").
			Where("band_genres.genre_id = ?", *filter.GenreID)
	}
	if filter.InstrumentID != nil {
		q = q.Where("band_ads.instrument_id = ?", *filter.InstrumentID)
	}
	if filter.CityID != nil {
		q = q.Where("bands.city_id = ?", *filter.CityID)
	}
	if filter.Experience != nil {
		q = q.Where("band_ads.experience = ?", *filter.Experience)
	}
	return q
}

func (r *bandAdRepository) Search(ctx context.Context, filter BandAdFilter) ([]models.BandAd, int64, error) {
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var total int64
	err := r.filtered(ctx, filter).
		Distinct("band_ads.id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ads []models.BandAd
	err = r.filtered(ctx, filter).
		Select("band_ads.*").
		Group("band_ads.id").
		Order("band_ads.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}
