package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

// MarketAdFilter holds the optional market-search filters.
type MarketAdFilter struct {
	CityID           *uint
	IsNew            *bool
	PossibleExchange *bool
	MinPrice         *int64
	MaxPrice         *int64
	Page             int
	Limit            int
}

type MarketAdRepository interface {
	Create(ctx context.Context, ad *models.MarketAd) error
	GetByID(ctx context.Context, id uint) (*models.MarketAd, error)
	Update(ctx context.Context, ad *models.MarketAd) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.MarketAd, error)
	Search(ctx context.Context, filter MarketAdFilter) ([]models.MarketAd, int64, error)
	WithTx(tx *gorm.DB) MarketAdRepository
}

type marketAdRepository struct {
	db *gorm.DB
}

func NewMarketAdRepository(db *gorm.DB) MarketAdRepository {
	return &marketAdRepository{db: db}
}

func (r *marketAdRepository) WithTx(tx *gorm.DB) MarketAdRepository {
	return &marketAdRepository{db: tx}
}

func (r *marketAdRepository) Create(ctx context.Context, ad *models.MarketAd) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *marketAdRepository) GetByID(ctx context.Context, id uint) (*models.MarketAd, error) {
	var ad models.MarketAd
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ad, nil
}

func (r *marketAdRepository) Update(ctx context.Context, ad *models.MarketAd) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *marketAdRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MarketAd{}, id).Error
}

func (r *marketAdRepository) ListByUser(ctx context.Context, userID uint) ([]models.MarketAd, error) {
	var ads []models.MarketAd
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("published_at DESC").
		Find(&ads).Error
	return ads, err
}

func (r *marketAdRepository) filtered(ctx context.Context, filter MarketAdFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.MarketAd{})
	if filter.CityID != nil {
		q = q.Where("city_id = ?", *filter.CityID)
	}
	if filter.IsNew != nil {
		q = q.Where("is_new = ?", *filter.IsNew)
	}
	if filter.PossibleExchange != nil {
		q = q.Where("possible_exchange = ?", *filter.PossibleExchange)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	return q
}

func (r *marketAdRepository) Search(ctx context.Context, filter MarketAdFilter) ([]models.MarketAd, int64, error) {
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []models.MarketAd
	err := r.filtered(ctx, filter).
		Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}
