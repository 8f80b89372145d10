package repositories

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	ReplaceInstruments(ctx context.Context, userID uint, instrumentIDs []uint) error
	GetInstrumentIDs(ctx context.Context, userID uint) ([]uint, error)
	WithTx(tx *gorm.DB) UserRepository
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ReplaceInstruments rewrites the user's instrument set wholesale.
func (r *userRepository) ReplaceInstruments(ctx context.Context, userID uint, instrumentIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&models.UserInstrument{}).Error; err != nil {
		return err
	}
	if len(instrumentIDs) == 0 {
		return nil
	}
	rows := make([]models.UserInstrument, 0, len(instrumentIDs))
	for _, id := range instrumentIDs {
		rows = append(rows, models.UserInstrument{UserID: userID, InstrumentID: id})
	}
	return db.Create(&rows).Error
}

func (r *userRepository) GetInstrumentIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.UserInstrument{}).
		Where("user_id = ?", userID).
		Pluck("instrument_id", &ids).Error
	return ids, err
}
