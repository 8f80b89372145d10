package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

type DirectoryRepository interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListInstruments(ctx context.Context) ([]models.Instrument, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

type directoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

func (r *directoryRepository) ListCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.db.WithContext(ctx).Order("name").Find(&cities).Error
	return cities, err
}

func (r *directoryRepository) ListInstruments(ctx context.Context) ([]models.Instrument, error) {
	var instruments []models.Instrument
	err := r.db.WithContext(ctx).Order("name").Find(&instruments).Error
	return instruments, err
}

func (r *directoryRepository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("name").Find(&genres).Error
	return genres, err
}
