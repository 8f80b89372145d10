package models

import "time"

// MarketAd is a secondhand gear listing owned by a user.
type MarketAd struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	IsNew            bool      `gorm:"not null;default:false" json:"is_new"`
	PossibleExchange bool      `gorm:"not null;default:false" json:"possible_exchange"`
	CityID           uint      `gorm:"not null" json:"city_id"`
	Price            int64     `gorm:"not null" json:"price"`
	PublishedAt      time.Time `gorm:"not null;index" json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MarketAd) TableName() string {
	return "market_ads"
}

// MarketImage is a gallery photo. AdID stays NULL until the ad-create
// or ad-update flow attaches it; an attached image cannot be deleted
// directly. At most one image per ad has IsCover set.
type MarketImage struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AdID          *uint  `gorm:"index" json:"ad_id,omitempty"`
	OwnerID       uint   `gorm:"not null;index" json:"owner_id"`
	Path          string `gorm:"size:512;not null" json:"path"`
	ThumbnailPath string `gorm:"size:512;not null" json:"thumbnail_path"`
	IsCover       bool   `gorm:"not null;default:false" json:"is_cover"`

	CreatedAt time.Time `json:"created_at"`
}

func (MarketImage) TableName() string {
	return "market_images"
}
