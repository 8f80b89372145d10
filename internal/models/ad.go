package models

import "time"

// Ad statuses. Free-text column, these are the values the API writes.
const (
	AdStatusActive = "active"
	AdStatusClosed = "closed"
)

// MusicianAd is a musician-seeking-band listing owned by a user.
type MusicianAd struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	InstrumentID uint   `gorm:"not null" json:"instrument_id"`
	Description  string `gorm:"type:text" json:"description"`
	CityID       *uint  `json:"city_id,omitempty"`
	Experience   int    `gorm:"not null;default:0" json:"experience"`
	Status       string `gorm:"size:32;not null;default:active" json:"status"`

	// Preference flags from the ad form. Stored and returned as-is.
	ExpAction     bool `gorm:"not null;default:false" json:"exp_action"`
	SelfInstr     bool `gorm:"not null;default:false" json:"self_instr"`
	ExpBand       bool `gorm:"not null;default:false" json:"exp_band"`
	ExpBandAction bool `gorm:"not null;default:false" json:"exp_band_action"`
	Base          bool `gorm:"not null;default:false" json:"base"`
	SelfCreation  bool `gorm:"not null;default:false" json:"self_creation"`
	ComProject    bool `gorm:"not null;default:false" json:"com_project"`
	CoverBand     bool `gorm:"not null;default:false" json:"cover_band"`

	// Admin-created ads may carry contact details for a person
	// without an account.
	ApplicantName  *string `gorm:"size:255" json:"applicant_name,omitempty"`
	ApplicantPhone *string `gorm:"size:32" json:"applicant_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MusicianAd) TableName() string {
	return "musician_ads"
}

// MusicianAdGenre links a musician ad to a genre tag.
type MusicianAdGenre struct {
	AdID    uint `gorm:"primaryKey;autoIncrement:false" json:"ad_id"`
	GenreID uint `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`
}

func (MusicianAdGenre) TableName() string {
	return "musician_ad_genres"
}

// BandAd is a band-seeking-musician listing owned by a band.
type BandAd struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BandID       uint   `gorm:"not null;index" json:"band_id"`
	InstrumentID uint   `gorm:"not null" json:"instrument_id"`
	Description  string `gorm:"type:text" json:"description"`
	Experience   int    `gorm:"not null;default:0" json:"experience"`
	Status       string `gorm:"size:32;not null;default:active" json:"status"`

	// Preference flags from the ad form.
	ExpAction bool `gorm:"not null;default:false" json:"exp_action"`
	SelfInstr bool `gorm:"not null;default:false" json:"self_instr"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BandAd) TableName() string {
	return "band_ads"
}
