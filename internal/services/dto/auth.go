package dto

import "time"

type SignUpRequest struct {
	Name          string     `json:"name" validate:"required,max=255"`
	Nickname      string     `json:"nickname" validate:"max=255"`
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8,max=72"`
	Phone         string     `json:"phone" validate:"max=32"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	CityID        *uint      `json:"city_id,omitempty"`
	InstrumentIDs []uint     `json:"instrument_ids,omitempty"`
}

type SignUpResponse struct {
	UserID uint `json:"user_id"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckEmailResponse struct {
	EmailExists bool `json:"email_exists"`
}
