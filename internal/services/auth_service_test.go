package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/services/dto"
)

func TestSignUpVerifySignInFlow(t *testing.T) {
	reg, _, _, mailer := newTestRegistry(t)
	ctx := context.Background()

	resp, err := reg.Auth.SignUp(ctx, dto.SignUpRequest{
		Name:          "Alex",
		Email:         "alex@example.com",
		Password:      "supersecret",
		InstrumentIDs: []uint{1, 2},
	})
	require.NoError(t, err)
	require.NotZero(t, resp.UserID)
	require.Len(t, mailer.Sent, 1)

	// Not active yet.
	_, err = reg.Auth.SignIn(ctx, dto.SignInRequest{Email: "alex@example.com", Password: "supersecret"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeUserNotVerified, appErr.Code)

	require.NoError(t, reg.Auth.VerifyEmail(ctx, dto.VerifyEmailRequest{Token: mailer.Sent[0].Token}))

	tokens, err := reg.Auth.SignIn(ctx, dto.SignInRequest{Email: "alex@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Re-verifying an active account is rejected.
	err = reg.Auth.VerifyEmail(ctx, dto.VerifyEmailRequest{Token: mailer.Sent[0].Token})
	require.Error(t, err)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	reg, _, _, _ := newTestRegistry(t)
	ctx := context.Background()

	req := dto.SignUpRequest{Name: "A", Email: "dup@example.com", Password: "supersecret"}
	_, err := reg.Auth.SignUp(ctx, req)
	require.NoError(t, err)

	_, err = reg.Auth.SignUp(ctx, req)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeEmailAlreadyExists, appErr.Code)
}

func TestSignInWrongCredentialsSameMessage(t *testing.T) {
	reg, _, _, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Auth.SignUp(ctx, dto.SignUpRequest{Name: "B", Email: "b@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, errPass := reg.Auth.SignIn(ctx, dto.SignInRequest{Email: "b@example.com", Password: "wrongwrong"})
	_, errEmail := reg.Auth.SignIn(ctx, dto.SignInRequest{Email: "nobody@example.com", Password: "whatever1"})

	var appErrPass, appErrEmail *apperrors.AppError
	require.True(t, apperrors.As(errPass, &appErrPass))
	require.True(t, apperrors.As(errEmail, &appErrEmail))
	assert.Equal(t, appErrPass.Code, appErrEmail.Code)
	assert.Equal(t, appErrPass.Message, appErrEmail.Message)
}

func TestCheckEmail(t *testing.T) {
	reg, _, _, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Auth.SignUp(ctx, dto.SignUpRequest{Name: "C", Email: "c@example.com", Password: "supersecret"})
	require.NoError(t, err)

	resp, err := reg.Auth.CheckEmail(ctx, dto.CheckEmailRequest{Email: "c@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.EmailExists)

	resp, err = reg.Auth.CheckEmail(ctx, dto.CheckEmailRequest{Email: "missing@example.com"})
	require.NoError(t, err)
	assert.False(t, resp.EmailExists)
}

func TestVerifyEmailRejectsBadToken(t *testing.T) {
	reg, _, _, _ := newTestRegistry(t)

	err := reg.Auth.VerifyEmail(context.Background(), dto.VerifyEmailRequest{Token: "garbage"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}
