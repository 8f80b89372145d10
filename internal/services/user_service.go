package services

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

type UserService struct {
	db        *gorm.DB
	userRepo  repositories.UserRepository
	imageRepo repositories.ImageRepository
}

func NewUserService(db *gorm.DB, userRepo repositories.UserRepository, imageRepo repositories.ImageRepository) *UserService {
	return &UserService{
		db:        db,
		userRepo:  userRepo,
		imageRepo: imageRepo,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	instruments, err := s.userRepo.GetInstrumentIDs(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	avatar, err := s.avatarInfo(ctx, userID, models.OwnerTypeUser)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfile{
		User:          *user,
		InstrumentIDs: instruments,
		Avatar:        avatar,
	}, nil
}

// UpdateProfile rewrites scalar fields and the full instrument set in
// one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user.Name = req.Name
	user.Nickname = req.Nickname
	user.Phone = req.Phone
	user.Birthday = req.Birthday
	user.CityID = req.CityID
	user.Instagram = req.Instagram
	user.YouTube = req.YouTube
	user.Telegram = req.Telegram

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.userRepo.WithTx(tx)
		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		return repo.ReplaceInstruments(ctx, userID, req.InstrumentIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(ctx, userID)
}

func (s *UserService) avatarInfo(ctx context.Context, ownerID uint, ownerType string) (*dto.AvatarInfo, error) {
	image, err := s.imageRepo.GetByOwner(ctx, ownerID, ownerType)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.AvatarInfo{
		ID:            image.ID,
		Path:          image.Path,
		ThumbnailPath: image.ThumbnailPath,
	}, nil
}
