package services

import (
	"context"

	"gorm.io/gorm"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/auth"
	"badum_backend/internal/email"
	"badum_backend/internal/logger"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

type AuthService struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	mailer   email.Provider
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, tokens *auth.TokenManager, mailer email.Provider) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

// SignUp registers an unverified account and sends the verification
// email. Mail failure is logged, never surfaced: registration stands.
func (s *AuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.SignUpResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Nickname:     req.Nickname,
		Phone:        req.Phone,
		Birthday:     req.Birthday,
		CityID:       req.CityID,
		Status:       models.UserStatusUnverified,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.userRepo.WithTx(tx)
		if err := repo.Create(ctx, &user); err != nil {
			return err
		}
		return repo.ReplaceInstruments(ctx, user.ID, req.InstrumentIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.GenerateVerifyToken(user.ID)
	if err != nil {
		logger.CtxError(ctx, "generate verification token", err, "user_id", user.ID)
	} else if err := s.mailer.SendVerificationEmail(ctx, user.Email, user.Name, token); err != nil {
		logger.CtxError(ctx, "send verification email", err, "user_id", user.ID)
	}

	return &dto.SignUpResponse{UserID: user.ID}, nil
}

// VerifyEmail activates the account the token was issued for.
func (s *AuthService) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error {
	claims, err := s.tokens.ParseToken(req.Token, auth.TokenVerify)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	if user.Status == models.UserStatusActive {
		return apperrors.NewNotFoundError("No account pending verification")
	}

	user.Status = models.UserStatusActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) CheckEmail(ctx context.Context, req dto.CheckEmailRequest) (*dto.CheckEmailResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CheckEmailResponse{EmailExists: exists}, nil
}

// SignIn authenticates an active account. Unknown email and wrong
// password produce the same response.
func (s *AuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrUserNotVerified
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
