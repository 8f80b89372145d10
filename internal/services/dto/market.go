package dto

import "badum_backend/internal/models"

type CreateMarketAdRequest struct {
	Title            string `json:"title" validate:"required,max=255"`
	Description      string `json:"description"`
	IsNew            bool   `json:"is_new"`
	PossibleExchange bool   `json:"possible_exchange"`
	CityID           uint   `json:"city_id" validate:"required"`
	Price            int64  `json:"price" validate:"required,gte=0"`
	ImageIDs         []uint `json:"image_ids" validate:"required,min=1"`
	CoverImageID     *uint  `json:"cover_image_id,omitempty"`
}

type UpdateMarketAdRequest struct {
	Title            string `json:"title" validate:"required,max=255"`
	Description      string `json:"description"`
	IsNew            bool   `json:"is_new"`
	PossibleExchange bool   `json:"possible_exchange"`
	CityID           uint   `json:"city_id" validate:"required"`
	Price            int64  `json:"price" validate:"required,gte=0"`
	ImageIDs         []uint `json:"image_ids" validate:"required,min=1"`
	CoverImageID     *uint  `json:"cover_image_id,omitempty"`
}

// MarketAdSummary is a list row with its cover thumbnail.
type MarketAdSummary struct {
	models.MarketAd
	CoverThumbnail *string `json:"cover_thumbnail,omitempty"`
}

// MarketAdDetail is the full ad with author block and gallery ordered
// cover first.
type MarketAdDetail struct {
	models.MarketAd
	AuthorName  string               `json:"author_name"`
	AuthorPhone string               `json:"author_phone,omitempty"`
	Images      []models.MarketImage `json:"images"`
}

type MarketImageUploadResponse struct {
	ImageID       uint   `json:"image_id"`
	Path          string `json:"path"`
	ThumbnailPath string `json:"thumbnail_path"`
}
