package services

import (
	"context"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/repositories"
)

// Authorizer answers role and ownership questions for mutations.
// Absence of a membership row or role is a Denied outcome, not an
// error condition.
type Authorizer struct {
	bandRepo repositories.BandRepository
	userRepo repositories.UserRepository
}

func NewAuthorizer(bandRepo repositories.BandRepository, userRepo repositories.UserRepository) *Authorizer {
	return &Authorizer{bandRepo: bandRepo, userRepo: userRepo}
}

// RequireBandRole checks that the principal holds one of the given
// roles in the band.
func (a *Authorizer) RequireBandRole(ctx context.Context, principalID, bandID uint, roles ...string) error {
	member, err := a.bandRepo.GetMember(ctx, bandID, principalID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return apperrors.InternalError(err)
	}
	for _, role := range roles {
		if member.Role == role {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

// RequireAdmin checks the platform-wide admin flag.
func (a *Authorizer) RequireAdmin(ctx context.Context, principalID uint) error {
	user, err := a.userRepo.GetByID(ctx, principalID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return apperrors.InternalError(err)
	}
	if !user.IsAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

// IsAdmin reports the platform-wide admin flag without rejecting.
func (a *Authorizer) IsAdmin(ctx context.Context, principalID uint) (bool, error) {
	user, err := a.userRepo.GetByID(ctx, principalID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return user.IsAdmin, nil
}
