package dto

import "badum_backend/internal/models"

type CreateMusicianAdRequest struct {
	InstrumentID uint   `json:"instrument_id" validate:"required"`
	Description  string `json:"description"`
	CityID       *uint  `json:"city_id,omitempty"`
	Experience   int    `json:"experience" validate:"gte=0"`
	GenreIDs     []uint `json:"genre_ids,omitempty"`

	ExpAction     bool `json:"exp_action"`
	SelfInstr     bool `json:"self_instr"`
	ExpBand       bool `json:"exp_band"`
	ExpBandAction bool `json:"exp_band_action"`
	Base          bool `json:"base"`
	SelfCreation  bool `json:"self_creation"`
	ComProject    bool `json:"com_project"`
	CoverBand     bool `json:"cover_band"`
}

type UpdateMusicianAdRequest = CreateMusicianAdRequest

// AdminCreateMusicianAdRequest lets a platform admin publish an ad for
// a person without an account.
type AdminCreateMusicianAdRequest struct {
	CreateMusicianAdRequest
	UserID         uint    `json:"user_id" validate:"required"`
	ApplicantName  *string `json:"applicant_name,omitempty" validate:"omitempty,max=255"`
	ApplicantPhone *string `json:"applicant_phone,omitempty" validate:"omitempty,max=32"`
}

type MusicianAdResponse struct {
	models.MusicianAd
	GenreIDs []uint `json:"genre_ids"`
}

type CreateAdResponse struct {
	AdID uint `json:"ad_id"`
}

type CreateBandAdRequest struct {
	InstrumentID uint   `json:"instrument_id" validate:"required"`
	Description  string `json:"description"`
	Experience   int    `json:"experience" validate:"gte=0"`
	ExpAction    bool   `json:"exp_action"`
	SelfInstr    bool   `json:"self_instr"`
}

// PublicMusicianAd is a public-search row with its author block.
type PublicMusicianAd struct {
	models.MusicianAd
	GenreIDs        []uint  `json:"genre_ids"`
	AuthorName      string  `json:"author_name"`
	AuthorNickname  string  `json:"author_nickname,omitempty"`
	AuthorPhone     string  `json:"author_phone,omitempty"`
	AvatarThumbnail *string `json:"avatar_thumbnail,omitempty"`
}

// PublicBandAd is a public-search row with its band block.
type PublicBandAd struct {
	models.BandAd
	BandName        string  `json:"band_name"`
	BandCityID      *uint   `json:"band_city_id,omitempty"`
	GenreIDs        []uint  `json:"genre_ids"`
	AvatarThumbnail *string `json:"avatar_thumbnail,omitempty"`
	ContactName     string  `json:"contact_name,omitempty"`
	ContactPhone    string  `json:"contact_phone,omitempty"`
}

// Page is the standard paginated envelope.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
