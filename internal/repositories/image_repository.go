package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	GetByOwner(ctx context.Context, ownerID uint, ownerType string) (*models.Image, error)
	Delete(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID uint, ownerType string) error
	WithTx(tx *gorm.DB) ImageRepository
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) WithTx(tx *gorm.DB) ImageRepository {
	return &imageRepository{db: tx}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *imageRepository) GetByOwner(ctx context.Context, ownerID uint, ownerType string) (*models.Image, error) {
	var image models.Image
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID, ownerType).
		First(&image).Error
	if err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Image{}, id).Error
}

func (r *imageRepository) DeleteByOwner(ctx context.Context, ownerID uint, ownerType string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID, ownerType).
		Delete(&models.Image{}).Error
}
