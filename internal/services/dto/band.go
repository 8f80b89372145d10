package dto

import "badum_backend/internal/models"

type CreateBandRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	CityID      *uint  `json:"city_id,omitempty"`
	FormedIn    string `json:"formed_in" validate:"max=32"`
	Description string `json:"description"`
	Spotify     string `json:"spotify" validate:"max=255"`
	YouTube     string `json:"youtube" validate:"max=255"`
	GenreIDs    []uint `json:"genre_ids,omitempty"`
}

type UpdateBandRequest = CreateBandRequest

// AdminCreateBandRequest lets a platform admin create a band for a
// target user, optionally with an applicant contact phone.
type AdminCreateBandRequest struct {
	CreateBandRequest
	UserID         uint    `json:"user_id" validate:"required"`
	ApplicantPhone *string `json:"applicant_phone,omitempty" validate:"omitempty,max=32"`
}

type BandResponse struct {
	models.Band
	GenreIDs []uint      `json:"genre_ids"`
	Avatar   *AvatarInfo `json:"avatar,omitempty"`
}

// MyBand is a roster entry of the caller with their role.
type MyBand struct {
	models.Band
	Role   string      `json:"role"`
	Avatar *AvatarInfo `json:"avatar,omitempty"`
}

type AddMemberRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=admin moderator member"`
}

type MemberResponse struct {
	UserID        uint        `json:"user_id"`
	Name          string      `json:"name"`
	Nickname      string      `json:"nickname"`
	Role          string      `json:"role"`
	InstrumentIDs []uint      `json:"instrument_ids"`
	Avatar        *AvatarInfo `json:"avatar,omitempty"`
}

type UpdateMemberInstrumentsRequest struct {
	InstrumentIDs []uint `json:"instrument_ids"`
}
