package services

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/logger"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
	"badum_backend/internal/storage"
)

type BandService struct {
	db         *gorm.DB
	bandRepo   repositories.BandRepository
	bandAdRepo repositories.BandAdRepository
	userRepo   repositories.UserRepository
	imageRepo  repositories.ImageRepository
	store      storage.Storage
	authorizer *Authorizer
}

func NewBandService(
	db *gorm.DB,
	bandRepo repositories.BandRepository,
	bandAdRepo repositories.BandAdRepository,
	userRepo repositories.UserRepository,
	imageRepo repositories.ImageRepository,
	store storage.Storage,
	authorizer *Authorizer,
) *BandService {
	return &BandService{
		db:         db,
		bandRepo:   bandRepo,
		bandAdRepo: bandAdRepo,
		userRepo:   userRepo,
		imageRepo:  imageRepo,
		store:      store,
		authorizer: authorizer,
	}
}

// Create inserts the band, its creator as admin member and the genre
// set in one transaction.
func (s *BandService) Create(ctx context.Context, creatorID uint, req dto.CreateBandRequest) (*dto.BandResponse, error) {
	band := models.Band{
		Name:        req.Name,
		CityID:      req.CityID,
		FormedIn:    req.FormedIn,
		Description: req.Description,
		Spotify:     req.Spotify,
		YouTube:     req.YouTube,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.bandRepo.WithTx(tx)
		if err := repo.Create(ctx, &band); err != nil {
			return err
		}
		member := models.BandMember{
			BandID: band.ID,
			UserID: creatorID,
			Role:   models.RoleAdmin,
		}
		if err := repo.AddMember(ctx, &member); err != nil {
			return err
		}
		return repo.ReplaceGenres(ctx, band.ID, req.GenreIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(ctx, band.ID)
}

// AdminCreate creates a band for a target user, who becomes its admin
// member. Platform-admin only.
func (s *BandService) AdminCreate(ctx context.Context, principalID uint, req dto.AdminCreateBandRequest) (*dto.BandResponse, error) {
	if err := s.authorizer.RequireAdmin(ctx, principalID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	band := models.Band{
		Name:           req.Name,
		CityID:         req.CityID,
		FormedIn:       req.FormedIn,
		Description:    req.Description,
		Spotify:        req.Spotify,
		YouTube:        req.YouTube,
		ApplicantPhone: req.ApplicantPhone,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.bandRepo.WithTx(tx)
		if err := repo.Create(ctx, &band); err != nil {
			return err
		}
		member := models.BandMember{
			BandID: band.ID,
			UserID: req.UserID,
			Role:   models.RoleAdmin,
		}
		if err := repo.AddMember(ctx, &member); err != nil {
			return err
		}
		return repo.ReplaceGenres(ctx, band.ID, req.GenreIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(ctx, band.ID)
}

// Update requires the admin role; scalar fields and the genre set are
// rewritten together.
func (s *BandService) Update(ctx context.Context, principalID, bandID uint, req dto.UpdateBandRequest) (*dto.BandResponse, error) {
	if err := s.authorizer.RequireBandRole(ctx, principalID, bandID, models.RoleAdmin); err != nil {
		return nil, err
	}

	band, err := s.bandRepo.GetByID(ctx, bandID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Band")
		}
		return nil, apperrors.InternalError(err)
	}

	band.Name = req.Name
	band.CityID = req.CityID
	band.FormedIn = req.FormedIn
	band.Description = req.Description
	band.Spotify = req.Spotify
	band.YouTube = req.YouTube

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.bandRepo.WithTx(tx)
		if err := repo.Update(ctx, band); err != nil {
			return err
		}
		return repo.ReplaceGenres(ctx, bandID, req.GenreIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(ctx, bandID)
}

// Delete requires the admin role. Rows go in one transaction: avatar
// record, member instruments, members, ads, band. Backing files are
// unlinked best-effort after commit.
func (s *BandService) Delete(ctx context.Context, principalID, bandID uint) error {
	if err := s.authorizer.RequireBandRole(ctx, principalID, bandID, models.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.bandRepo.GetByID(ctx, bandID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Band")
		}
		return apperrors.InternalError(err)
	}

	avatar, err := s.imageRepo.GetByOwner(ctx, bandID, models.OwnerTypeGroup)
	if err != nil && !apperrors.Is(err, repositories.ErrNotFound) {
		return apperrors.InternalError(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		bands := s.bandRepo.WithTx(tx)
		if err := s.imageRepo.WithTx(tx).DeleteByOwner(ctx, bandID, models.OwnerTypeGroup); err != nil {
			return err
		}
		if err := bands.RemoveAllMemberInstruments(ctx, bandID); err != nil {
			return err
		}
		if err := bands.RemoveAllMembers(ctx, bandID); err != nil {
			return err
		}
		if err := s.bandAdRepo.WithTx(tx).DeleteByBand(ctx, bandID); err != nil {
			return err
		}
		return bands.Delete(ctx, bandID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	if avatar != nil {
		s.removeFiles(ctx, avatar.Path, avatar.ThumbnailPath)
	}
	return nil
}

func (s *BandService) MyBands(ctx context.Context, userID uint) ([]dto.MyBand, error) {
	rows, err := s.bandRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MyBand, 0, len(rows))
	for _, row := range rows {
		avatar, err := s.avatarInfo(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.MyBand{
			Band:   row.Band,
			Role:   row.Role,
			Avatar: avatar,
		})
	}
	return result, nil
}

func (s *BandService) GetByID(ctx context.Context, bandID uint) (*dto.BandResponse, error) {
	band, err := s.bandRepo.GetByID(ctx, bandID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Band")
		}
		return nil, apperrors.InternalError(err)
	}

	genres, err := s.bandRepo.GetGenreIDs(ctx, bandID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	avatar, err := s.avatarInfo(ctx, bandID)
	if err != nil {
		return nil, err
	}

	return &dto.BandResponse{
		Band:     *band,
		GenreIDs: genres,
		Avatar:   avatar,
	}, nil
}

func (s *BandService) Members(ctx context.Context, bandID uint) ([]dto.MemberResponse, error) {
	if _, err := s.bandRepo.GetByID(ctx, bandID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Band")
		}
		return nil, apperrors.InternalError(err)
	}

	members, err := s.bandRepo.ListMembers(ctx, bandID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MemberResponse, 0, len(members))
	for _, member := range members {
		user, err := s.userRepo.GetByID(ctx, member.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}

		instruments, err := s.bandRepo.GetMemberInstrumentIDs(ctx, bandID, member.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		avatar, err := s.userAvatarInfo(ctx, member.UserID)
		if err != nil {
			return nil, err
		}

		result = append(result, dto.MemberResponse{
			UserID:        member.UserID,
			Name:          user.Name,
			Nickname:      user.Nickname,
			Role:          member.Role,
			InstrumentIDs: instruments,
			Avatar:        avatar,
		})
	}
	return result, nil
}

// AddMember requires admin or moderator. Duplicate roster rows are a
// conflict.
func (s *BandService) AddMember(ctx context.Context, principalID, bandID uint, req dto.AddMemberRequest) error {
	if err := s.authorizer.RequireBandRole(ctx, principalID, bandID, models.RoleAdmin, models.RoleModerator); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.bandRepo.GetMember(ctx, bandID, req.UserID); err == nil {
		return apperrors.NewConflictError("User is already a member of this band")
	} else if !apperrors.Is(err, repositories.ErrNotFound) {
		return apperrors.InternalError(err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	member := models.BandMember{BandID: bandID, UserID: req.UserID, Role: role}
	if err := s.bandRepo.AddMember(ctx, &member); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RemoveMember requires the admin role; the member's instrument tags
// go with the roster row.
func (s *BandService) RemoveMember(ctx context.Context, principalID, bandID, userID uint) error {
	if err := s.authorizer.RequireBandRole(ctx, principalID, bandID, models.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.bandRepo.GetMember(ctx, bandID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Band member")
		}
		return apperrors.InternalError(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.bandRepo.WithTx(tx)
		if err := repo.RemoveMemberInstruments(ctx, bandID, userID); err != nil {
			return err
		}
		return repo.RemoveMember(ctx, bandID, userID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateMemberInstruments requires admin or moderator and rewrites the
// member's instrument set wholesale.
func (s *BandService) UpdateMemberInstruments(ctx context.Context, principalID, bandID, userID uint, req dto.UpdateMemberInstrumentsRequest) error {
	if err := s.authorizer.RequireBandRole(ctx, principalID, bandID, models.RoleAdmin, models.RoleModerator); err != nil {
		return err
	}

	if _, err := s.bandRepo.GetMember(ctx, bandID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Band member")
		}
		return apperrors.InternalError(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.bandRepo.WithTx(tx).ReplaceMemberInstruments(ctx, bandID, userID, req.InstrumentIDs)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BandService) avatarInfo(ctx context.Context, bandID uint) (*dto.AvatarInfo, error) {
	return s.ownerAvatarInfo(ctx, bandID, models.OwnerTypeGroup)
}

func (s *BandService) userAvatarInfo(ctx context.Context, userID uint) (*dto.AvatarInfo, error) {
	return s.ownerAvatarInfo(ctx, userID, models.OwnerTypeUser)
}

func (s *BandService) ownerAvatarInfo(ctx context.Context, ownerID uint, ownerType string) (*dto.AvatarInfo, error) {
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

func (s *BandService) removeFiles(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := s.store.Delete(ctx, path); err != nil {
			logger.CtxWarn(ctx, "delete stored file", "path", path, "error", err)
		}
	}
}
