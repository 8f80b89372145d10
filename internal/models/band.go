package models

import "time"

// Band member roles. A creator is inserted as admin at band creation.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

type Band struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	CityID      *uint  `json:"city_id,omitempty"`
	FormedIn    string `gorm:"size:32" json:"formed_in,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Streaming links.
	Spotify string `gorm:"size:255" json:"spotify,omitempty"`
	YouTube string `gorm:"size:255" json:"youtube,omitempty"`

	// Admin-created bands may carry a contact phone for a person
	// without an account.
	ApplicantPhone *string `gorm:"size:32" json:"applicant_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Band) TableName() string {
	return "bands"
}

// BandMember is a roster row, unique per (band, user).
type BandMember struct {
	BandID    uint      `gorm:"primaryKey;autoIncrement:false" json:"band_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Role      string    `gorm:"size:32;not null;default:member" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (BandMember) TableName() string {
	return "band_members"
}

// BandGenre links a band to a genre tag.
type BandGenre struct {
	BandID  uint `gorm:"primaryKey;autoIncrement:false" json:"band_id"`
	GenreID uint `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`
}

func (BandGenre) TableName() string {
	return "band_genres"
}

// BandMemberInstrument is an instrument tag scoped to a roster row.
type BandMemberInstrument struct {
	BandID       uint `gorm:"primaryKey;autoIncrement:false" json:"band_id"`
	UserID       uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	InstrumentID uint `gorm:"primaryKey;autoIncrement:false" json:"instrument_id"`
}

func (BandMemberInstrument) TableName() string {
	return "band_member_instruments"
}
