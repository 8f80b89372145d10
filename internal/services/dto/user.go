package dto

import (
	"time"

	"badum_backend/internal/models"
)

type UpdateProfileRequest struct {
	Name          string     `json:"name" validate:"required,max=255"`
	Nickname      string     `json:"nickname" validate:"max=255"`
	Phone         string     `json:"phone" validate:"max=32"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	CityID        *uint      `json:"city_id,omitempty"`
	Instagram     string     `json:"instagram" validate:"max=255"`
	YouTube       string     `json:"youtube" validate:"max=255"`
	Telegram      string     `json:"telegram" validate:"max=255"`
	InstrumentIDs []uint     `json:"instrument_ids,omitempty"`
}

// AvatarInfo is the avatar block embedded in profile and roster rows.
type AvatarInfo struct {
	ID            uint   `json:"id"`
	Path          string `json:"path"`
	ThumbnailPath string `json:"thumbnail_path"`
}

type UserProfile struct {
	models.User
	InstrumentIDs []uint      `json:"instrument_ids"`
	Avatar        *AvatarInfo `json:"avatar,omitempty"`
}
