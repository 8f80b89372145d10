package services

import (
	"context"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
)

type DirectoryService struct {
	repo repositories.DirectoryRepository
}

func NewDirectoryService(repo repositories.DirectoryRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

func (s *DirectoryService) Cities(ctx context.Context) ([]models.City, error) {
	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cities, nil
}

func (s *DirectoryService) Instruments(ctx context.Context) ([]models.Instrument, error) {
	instruments, err := s.repo.ListInstruments(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return instruments, nil
}

func (s *DirectoryService) Genres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return genres, nil
}
