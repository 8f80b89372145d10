package models

import "time"

// User statuses.
const (
	UserStatusUnverified = "unverified"
	UserStatusActive     = "active"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Nickname     string     `gorm:"size:255" json:"nickname"`
	Phone        string     `gorm:"size:32" json:"phone"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	CityID       *uint      `json:"city_id,omitempty"`
	Status       string     `gorm:"size:32;not null;default:unverified" json:"status"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"-"`

	// Social links.
	Instagram string `gorm:"size:255" json:"instagram,omitempty"`
	YouTube   string `gorm:"size:255" json:"youtube,omitempty"`
	Telegram  string `gorm:"size:255" json:"telegram,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserInstrument links a user to an instrument they play. The set is
// rewritten wholesale on profile update.
type UserInstrument struct {
	UserID       uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	InstrumentID uint `gorm:"primaryKey;autoIncrement:false" json:"instrument_id"`
}

func (UserInstrument) TableName() string {
	return "user_instruments"
}
