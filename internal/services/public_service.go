package services

import (
	"context"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

// PublicService serves the unauthenticated search and detail endpoints.
type PublicService struct {
	musicianAds repositories.MusicianAdRepository
	bandAds     repositories.BandAdRepository
	bands       repositories.BandRepository
	users       repositories.UserRepository
	images      repositories.ImageRepository
}

func NewPublicService(
	musicianAds repositories.MusicianAdRepository,
	bandAds repositories.BandAdRepository,
	bands repositories.BandRepository,
	users repositories.UserRepository,
	images repositories.ImageRepository,
) *PublicService {
	return &PublicService{
		musicianAds: musicianAds,
		bandAds:     bandAds,
		bands:       bands,
		users:       users,
		images:      images,
	}
}

func (s *PublicService) SearchMusicians(ctx context.Context, filter repositories.MusicianAdFilter) (*dto.Page[dto.PublicMusicianAd], error) {
	ads, total, err := s.musicianAds.Search(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]uint, 0, len(ads))
	for _, ad := range ads {
		ids = append(ids, ad.ID)
	}
	genres, err := s.musicianAds.GetGenreIDsForAds(ctx, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.PublicMusicianAd, 0, len(ads))
	for _, ad := range ads {
		row, err := s.musicianRow(ctx, ad, genreSet(genres, ad.ID), false)
		if err != nil {
			return nil, err
		}
		items = append(items, *row)
	}

	return &dto.Page[dto.PublicMusicianAd]{
		Items: items,
		Total: total,
		Page:  maxInt(filter.Page, 1),
		Limit: maxInt(filter.Limit, 1),
	}, nil
}

// GetMusicianAd returns the ad with its author contact block.
func (s *PublicService) GetMusicianAd(ctx context.Context, adID uint) (*dto.PublicMusicianAd, error) {
	ad, err := s.musicianAds.GetByID(ctx, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Ad")
		}
		return nil, apperrors.InternalError(err)
	}

	genreIDs, err := s.musicianAds.GetGenreIDs(ctx, adID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.musicianRow(ctx, *ad, genreIDs, true)
}

func (s *PublicService) SearchBandAds(ctx context.Context, filter repositories.BandAdFilter) (*dto.Page[dto.PublicBandAd], error) {
	ads, total, err := s.bandAds.Search(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.PublicBandAd, 0, len(ads))
	for _, ad := range ads {
		row, err := s.bandRow(ctx, ad, false)
		if err != nil {
			return nil, err
		}
		items = append(items, *row)
	}

	return &dto.Page[dto.PublicBandAd]{
		Items: items,
		Total: total,
		Page:  maxInt(filter.Page, 1),
		Limit: maxInt(filter.Limit, 1),
	}, nil
}

// GetBandAd returns the ad with the band's admin member as contact.
func (s *PublicService) GetBandAd(ctx context.Context, adID uint) (*dto.PublicBandAd, error) {
	ad, err := s.bandAds.GetByID(ctx, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Ad")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.bandRow(ctx, *ad, true)
}

func (s *PublicService) musicianRow(ctx context.Context, ad models.MusicianAd, genreIDs []uint, withContact bool) (*dto.PublicMusicianAd, error) {
	row := dto.PublicMusicianAd{MusicianAd: ad, GenreIDs: genreIDs}

	user, err := s.users.GetByID(ctx, ad.UserID)
	if err != nil && !apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if user != nil {
		row.AuthorName = user.Name
		row.AuthorNickname = user.Nickname
		if withContact {
			row.AuthorPhone = user.Phone
		}
	}

	// Applicant overrides from the admin-created path win.
	if ad.ApplicantName != nil {
		row.AuthorName = *ad.ApplicantName
	}
	if withContact && ad.ApplicantPhone != nil {
		row.AuthorPhone = *ad.ApplicantPhone
	}

	thumb, err := s.avatarThumbnail(ctx, ad.UserID, models.OwnerTypeUser)
	if err != nil {
		return nil, err
	}
	row.AvatarThumbnail = thumb
	return &row, nil
}

func (s *PublicService) bandRow(ctx context.Context, ad models.BandAd, withContact bool) (*dto.PublicBandAd, error) {
	row := dto.PublicBandAd{BandAd: ad}

	band, err := s.bands.GetByID(ctx, ad.BandID)
	if err != nil && !apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if band != nil {
		row.BandName = band.Name
		row.BandCityID = band.CityID
	}

	genreIDs, err := s.bands.GetGenreIDs(ctx, ad.BandID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	row.GenreIDs = genreIDs

	thumb, err := s.avatarThumbnail(ctx, ad.BandID, models.OwnerTypeGroup)
	if err != nil {
		return nil, err
	}
	row.AvatarThumbnail = thumb

	if withContact {
		if err := s.fillBandContact(ctx, ad.BandID, band, &row); err != nil {
			return nil, err
		}
	}
	return &row, nil
}

// fillBandContact exposes the first admin member as the contact, or the
// applicant phone for admin-created bands.
func (s *PublicService) fillBandContact(ctx context.Context, bandID uint, band *models.Band, row *dto.PublicBandAd) error {
	members, err := s.bands.ListMembers(ctx, bandID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	for _, member := range members {
		if member.Role != models.RoleAdmin {
			continue
		}
		user, err := s.users.GetByID(ctx, member.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return apperrors.InternalError(err)
		}
		row.ContactName = user.Name
		row.ContactPhone = user.Phone
		break
	}
	if band != nil && band.ApplicantPhone != nil {
		row.ContactPhone = *band.ApplicantPhone
	}
	return nil
}

func (s *PublicService) avatarThumbnail(ctx context.Context, ownerID uint, ownerType string) (*string, error) {
	image, err := s.images.GetByOwner(ctx, ownerID, ownerType)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &image.ThumbnailPath, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
