package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

// BandWithRole is a band joined with the caller's roster role.
type BandWithRole struct {
	models.Band
	Role string `json:"role"`
}

type BandRepository interface {
	Create(ctx context.Context, band *models.Band) error
	GetByID(ctx context.Context, id uint) (*models.Band, error)
	Update(ctx context.Context, band *models.Band) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]BandWithRole, error)

	AddMember(ctx context.Context, member *models.BandMember) error
	GetMember(ctx context.Context, bandID, userID uint) (*models.BandMember, error)
	ListMembers(ctx context.Context, bandID uint) ([]models.BandMember, error)
	RemoveMember(ctx context.Context, bandID, userID uint) error
	RemoveAllMembers(ctx context.Context, bandID uint) error

	ReplaceGenres(ctx context.Context, bandID uint, genreIDs []uint) error
	GetGenreIDs(ctx context.Context, bandID uint) ([]uint, error)

	ReplaceMemberInstruments(ctx context.Context, bandID, userID uint, instrumentIDs []uint) error
	GetMemberInstrumentIDs(ctx context.Context, bandID, userID uint) ([]uint, error)
	RemoveMemberInstruments(ctx context.Context, bandID, userID uint) error
	RemoveAllMemberInstruments(ctx context.Context, bandID uint) error

	WithTx(tx *gorm.DB) BandRepository
}

type bandRepository struct {
	db *gorm.DB
}

func NewBandRepository(db *gorm.DB) BandRepository {
	return &bandRepository{db: db}
}

func (r *bandRepository) WithTx(tx *gorm.DB) BandRepository {
	return &bandRepository{db: tx}
}

func (r *bandRepository) Create(ctx context.Context, band *models.Band) error {
	return r.db.WithContext(ctx).Create(band).Error
}

func (r *bandRepository) GetByID(ctx context.Context, id uint) (*models.Band, error) {
	var band models.Band
	if err := r.db.WithContext(ctx).First(&band, id).Error; err != nil {
		return nil, translate(err)
	}
	return &band, nil
}

func (r *bandRepository) Update(ctx context.Context, band *models.Band) error {
	return r.db.WithContext(ctx).Save(band).Error
}

func (r *bandRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Band{}, id).Error
}

func (r *bandRepository) ListByUser(ctx context.Context, userID uint) ([]BandWithRole, error) {
	var rows []BandWithRole
	err := r.db.WithContext(ctx).Model(&models.Band{}).
		Select("bands.*, band_members.role").
		Joins("JOIN band_members ON band_members.band_id = bands.id").
		Where("band_members.user_id = ?", userID).
		Order("bands.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *bandRepository) AddMember(ctx context.Context, member *models.BandMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *bandRepository) GetMember(ctx context.Context, bandID, userID uint) (*models.BandMember, error) {
	var member models.BandMember
	err := r.db.WithContext(ctx).
		Where("band_id = ? AND user_id = ?", bandID, userID).
		First(&member).Error
	if err != nil {
		return nil, translate(err)
	}
	return &member, nil
}

func (r *bandRepository) ListMembers(ctx context.Context, bandID uint) ([]models.BandMember, error) {
	var members []models.BandMember
	err := r.db.WithContext(ctx).
		Where("band_id = ?", bandID).
		Order("created_at").
		Find(&members).Error
	return members, err
}

func (r *bandRepository) RemoveMember(ctx context.Context, bandID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("band_id = ? AND user_id = ?", bandID, userID).
		Delete(&models.BandMember{}).Error
}

func (r *bandRepository) RemoveAllMembers(ctx context.Context, bandID uint) error {
	return r.db.WithContext(ctx).
		Where("band_id = ?", bandID).
		Delete(&models.BandMember{}).Error
}

// ReplaceGenres rewrites the band's genre set wholesale.
func (r *bandRepository) ReplaceGenres(ctx context.Context, bandID uint, genreIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("band_id = ?", bandID).Delete(&models.BandGenre{}).Error; err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		return nil
	}
	rows := make([]models.BandGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, models.BandGenre{BandID: bandID, GenreID: id})
	}
	return db.Create(&rows).Error
}

func (r *bandRepository) GetGenreIDs(ctx context.Context, bandID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.BandGenre{}).
		Where("band_id = ?", bandID).
		Pluck("genre_id", &ids).Error
	return ids, err
}

func (r *bandRepository) ReplaceMemberInstruments(ctx context.Context, bandID, userID uint, instrumentIDs []uint) error {
	db := r.db.WithContext(ctx)
	err := db.Where("band_id = ? AND user_id = ?", bandID, userID).
		Delete(&models.BandMemberInstrument{}).Error
	if err != nil {
		return err
	}
	if len(instrumentIDs) == 0 {
		return nil
	}
	rows := make([]models.BandMemberInstrument, 0, len(instrumentIDs))
	for _, id := range instrumentIDs {
		rows = append(rows, models.BandMemberInstrument{
			BandID:       bandID,
			UserID:       userID,
			InstrumentID: id,
		})
	}
	return db.Create(&rows).Error
}

func (r *bandRepository) GetMemberInstrumentIDs(ctx context.Context, bandID, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.BandMemberInstrument{}).
		Where("band_id = ? AND user_id = ?", bandID, userID).
		Pluck("instrument_id", &ids).Error
	return ids, err
}

func (r *bandRepository) RemoveMemberInstruments(ctx context.Context, bandID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("band_id = ? AND user_id = ?", bandID, userID).
		Delete(&models.BandMemberInstrument{}).Error
}

func (r *bandRepository) RemoveAllMemberInstruments(ctx context.Context, bandID uint) error {
	return r.db.WithContext(ctx).
		Where("band_id = ?", bandID).
		Delete(&models.BandMemberInstrument{}).Error
}
