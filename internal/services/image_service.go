package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/config"
	"badum_backend/internal/imageprocessor"
	"badum_backend/internal/logger"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
	"badum_backend/internal/storage"
)

// ImageService implements the avatar and market-image lifecycles:
// process, persist, record, replace, delete.
type ImageService struct {
	db              *gorm.DB
	imageRepo       repositories.ImageRepository
	marketImageRepo repositories.MarketImageRepository
	store           storage.Storage
	authorizer      *Authorizer
	procOpts        imageprocessor.Options
}

func NewImageService(
	db *gorm.DB,
	imageRepo repositories.ImageRepository,
	marketImageRepo repositories.MarketImageRepository,
	store storage.Storage,
	authorizer *Authorizer,
	upload config.UploadConfig,
) *ImageService {
	return &ImageService{
		db:              db,
		imageRepo:       imageRepo,
		marketImageRepo: marketImageRepo,
		store:           store,
		authorizer:      authorizer,
		procOpts: imageprocessor.Options{
			ThumbnailSize:   upload.ThumbnailSize,
			ResizeThreshold: upload.ResizeThreshold,
		},
	}
}

// UploadAvatar replaces the single avatar slot for the owner. The old
// row is deleted and the new one inserted in the same transaction; old
// files are unlinked best-effort after commit.
func (s *ImageService) UploadAvatar(ctx context.Context, principalID uint, ownerType string, ownerID uint, data []byte) (*dto.AvatarInfo, error) {
	if !models.ValidOwnerType(ownerType) {
		return nil, apperrors.ErrInvalidOwnerType
	}

	switch ownerType {
	case models.OwnerTypeUser:
		ownerID = principalID
	case models.OwnerTypeGroup:
		if err := s.authorizer.RequireBandRole(ctx, principalID, ownerID, models.RoleAdmin, models.RoleModerator); err != nil {
			return nil, err
		}
	}

	result, err := imageprocessor.ProcessWith(data, s.procOpts)
	if err != nil {
		return nil, apperrors.ErrInvalidFileType
	}

	prev, err := s.imageRepo.GetByOwner(ctx, ownerID, ownerType)
	if err != nil && !apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.InternalError(err)
	}

	origPath, thumbPath := newImagePaths(storagePrefix(ownerType))
	if err := s.store.Save(ctx, origPath, result.Original, "image/jpeg"); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.store.Save(ctx, thumbPath, result.Thumbnail, "image/jpeg"); err != nil {
		s.removeFiles(ctx, origPath)
		return nil, apperrors.InternalError(err)
	}

	image := models.Image{
		OwnerID:       ownerID,
		OwnerType:     ownerType,
		Path:          origPath,
		ThumbnailPath: thumbPath,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.imageRepo.WithTx(tx)
		if err := repo.DeleteByOwner(ctx, ownerID, ownerType); err != nil {
			return err
		}
		return repo.Create(ctx, &image)
	})
	if err != nil {
		s.removeFiles(ctx, origPath, thumbPath)
		return nil, apperrors.InternalError(err)
	}

	if prev != nil {
		s.removeFiles(ctx, prev.Path, prev.ThumbnailPath)
	}

	return &dto.AvatarInfo{
		ID:            image.ID,
		Path:          image.Path,
		ThumbnailPath: image.ThumbnailPath,
	}, nil
}

// DeleteAvatar removes the owner's avatar. A missing avatar is a
// no-op. Platform admins may delete any avatar.
func (s *ImageService) DeleteAvatar(ctx context.Context, principalID uint, ownerType string, ownerID uint) error {
	if !models.ValidOwnerType(ownerType) {
		return apperrors.ErrInvalidOwnerType
	}

	isAdmin, err := s.authorizer.IsAdmin(ctx, principalID)
	if err != nil {
		return err
	}
	if !isAdmin {
		switch ownerType {
		case models.OwnerTypeUser:
			if ownerID != principalID {
				return apperrors.ErrForbidden
			}
		case models.OwnerTypeGroup:
			if err := s.authorizer.RequireBandRole(ctx, principalID, ownerID, models.RoleAdmin, models.RoleModerator); err != nil {
				return err
			}
		}
	}

	image, err := s.imageRepo.GetByOwner(ctx, ownerID, ownerType)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	if err := s.imageRepo.Delete(ctx, image.ID); err != nil {
		return apperrors.InternalError(err)
	}
	s.removeFiles(ctx, image.Path, image.ThumbnailPath)
	return nil
}

// UploadMarketImage stores an unattached gallery image owned by the
// caller. The ad-create/update flow attaches it later.
func (s *ImageService) UploadMarketImage(ctx context.Context, principalID uint, data []byte) (*dto.MarketImageUploadResponse, error) {
	result, err := imageprocessor.ProcessWith(data, s.procOpts)
	if err != nil {
		return nil, apperrors.ErrInvalidFileType
	}

	origPath, thumbPath := newImagePaths("market")
	if err := s.store.Save(ctx, origPath, result.Original, "image/jpeg"); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.store.Save(ctx, thumbPath, result.Thumbnail, "image/jpeg"); err != nil {
		s.removeFiles(ctx, origPath)
		return nil, apperrors.InternalError(err)
	}

	image := models.MarketImage{
		OwnerID:       principalID,
		Path:          origPath,
		ThumbnailPath: thumbPath,
	}
	if err := s.marketImageRepo.Create(ctx, &image); err != nil {
		s.removeFiles(ctx, origPath, thumbPath)
		return nil, apperrors.InternalError(err)
	}

	return &dto.MarketImageUploadResponse{
		ImageID:       image.ID,
		Path:          image.Path,
		ThumbnailPath: image.ThumbnailPath,
	}, nil
}

// DeleteMarketImage removes an unattached image owned by the caller.
// An attached image must be detached through an ad update first.
func (s *ImageService) DeleteMarketImage(ctx context.Context, principalID, imageID uint) error {
	image, err := s.marketImageRepo.GetByID(ctx, imageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Image")
		}
		return apperrors.InternalError(err)
	}
	if image.OwnerID != principalID {
		return apperrors.ErrForbidden
	}
	if image.AdID != nil {
		return apperrors.ErrImageAttached
	}

	if err := s.marketImageRepo.Delete(ctx, imageID); err != nil {
		return apperrors.InternalError(err)
	}
	s.removeFiles(ctx, image.Path, image.ThumbnailPath)
	return nil
}

func (s *ImageService) removeFiles(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := s.store.Delete(ctx, path); err != nil {
			logger.CtxWarn(ctx, "delete stored file", "path", path, "error", err)
		}
	}
}

func storagePrefix(ownerType string) string {
	if ownerType == models.OwnerTypeGroup {
		return "groups"
	}
	return "users"
}

// newImagePaths builds collision-resistant storage keys for an image
// and its thumbnail.
func newImagePaths(prefix string) (string, string) {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	name := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), hex.EncodeToString(buf))
	return fmt.Sprintf("%s/%s", prefix, name), fmt.Sprintf("%s/thumbnails/%s", prefix, name)
}
