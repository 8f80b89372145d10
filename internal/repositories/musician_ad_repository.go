package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

// MusicianAdFilter holds the optional public-search filters. Nil fields
// impose no constraint; present fields are ANDed.
type MusicianAdFilter struct {
	InstrumentID *uint
	GenreID      *uint
	CityID       *uint
	Experience   *int
	Page         int
	Limit        int
}

type MusicianAdRepository interface {
	Create(ctx context.Context, ad *models.MusicianAd) error
	GetByID(ctx context.Context, id uint) (*models.MusicianAd, error)
	Update(ctx context.Context, ad *models.MusicianAd) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.MusicianAd, error)
	Search(ctx context.Context, filter MusicianAdFilter) ([]models.MusicianAd, int64, error)

	ReplaceGenres(ctx context.Context, adID uint, genreIDs []uint) error
	GetGenreIDs(ctx context.Context, adID uint) ([]uint, error)
	GetGenreIDsForAds(ctx context.Context, adIDs []uint) (map[uint][]uint, error)
	DeleteGenres(ctx context.Context, adID uint) error

	WithTx(tx *gorm.DB) MusicianAdRepository
}

type musicianAdRepository struct {
	db *gorm.DB
}

func NewMusicianAdRepository(db *gorm.DB) MusicianAdRepository {
	return &musicianAdRepository{db: db}
}

func (r *musicianAdRepository) WithTx(tx *gorm.DB) MusicianAdRepository {
	return &musicianAdRepository{db: tx}
}

func (r *musicianAdRepository) Create(ctx context.Context, ad *models.MusicianAd) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *musicianAdRepository) GetByID(ctx context.Context, id uint) (*models.MusicianAd, error) {
	var ad models.MusicianAd
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ad, nil
}

func (r *musicianAdRepository) Update(ctx context.Context, ad *models.MusicianAd) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *musicianAdRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MusicianAd{}, id).Error
}

func (r *musicianAdRepository) ListByUser(ctx context.Context, userID uint) ([]models.MusicianAd, error) {
	var ads []models.MusicianAd
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&ads).Error
	return ads, err
}

// filtered builds the conjunctive predicate shared by the count and
// page queries. The genre filter joins the tag table, which fans rows
// out; callers must count distinct and group by ad id.
func (r *musicianAdRepository) filtered(ctx context.Context, filter MusicianAdFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.MusicianAd{})
	if filter.GenreID != nil {
		q = q.Joins("JOIN musician_ad_genres ON musician_ad_genres.ad_id = musician_ads.id").
			Where("musician_ad_genres.genre_id = ?", *filter.GenreID)
	}
	if filter.InstrumentID != nil {
		q = q.Where("musician_ads.instrument_id = ?", *filter.InstrumentID)
	}
	if filter.CityID != nil {
		q = q.Where("musician_ads.city_id = ?", *filter.CityID)
	}
	if filter.Experience != nil {
		q = q.Where("musician_ads.experience = ?", *filter.Experience)
	}
	return q
}

func (r *musicianAdRepository) Search(ctx context.Context, filter MusicianAdFilter) ([]models.MusicianAd, int64, error) {
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var total int64
	err := r.filtered(ctx, filter).
		Distinct("musician_ads.id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ads []models.MusicianAd
	err = r.filtered(ctx, filter).
		Select("musician_ads.*").
		Group("musician_ads.id").
		Order("musician_ads.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

// ReplaceGenres rewrites the ad's genre set wholesale.
func (r *musicianAdRepository) ReplaceGenres(ctx context.Context, adID uint, genreIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("ad_id = ?", adID).Delete(&models.MusicianAdGenre{}).Error; err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		return nil
	}
	rows := make([]models.MusicianAdGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, models.MusicianAdGenre{AdID: adID, GenreID: id})
	}
	return db.Create(&rows).Error
}

func (r *musicianAdRepository) GetGenreIDs(ctx context.Context, adID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.MusicianAdGenre{}).
		Where("ad_id = ?", adID).
		Pluck("genre_id", &ids).Error
	return ids, err
}

// GetGenreIDsForAds loads the tag sets for a page of ads in one query.
func (r *musicianAdRepository) GetGenreIDsForAds(ctx context.Context, adIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(adIDs))
	if len(adIDs) == 0 {
		return result, nil
	}
	var rows []models.MusicianAdGenre
	err := r.db.WithContext(ctx).
		Where("ad_id IN ?", adIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.AdID] = append(result[row.AdID], row.GenreID)
	}
	return result, nil
}

func (r *musicianAdRepository) DeleteGenres(ctx context.Context, adID uint) error {
	return r.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Delete(&models.MusicianAdGenre{}).Error
}
