package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badum_backend/internal/models"
	"badum_backend/internal/services/dto"
)

func TestUpdateProfileRewritesInstrumentSet(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	user := createUser(t, db, "user@example.com")

	profile, err := reg.Users.UpdateProfile(ctx, user.ID, dto.UpdateProfileRequest{
		Name:          "Updated Name",
		InstrumentIDs: []uint{1, 2, 3},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, profile.InstrumentIDs)

	profile, err = reg.Users.UpdateProfile(ctx, user.ID, dto.UpdateProfileRequest{
		Name:          "Updated Name",
		InstrumentIDs: []uint{3},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{3}, profile.InstrumentIDs)

	var count int64
	require.NoError(t, db.Model(&models.UserInstrument{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetProfileIncludesAvatar(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	user := createUser(t, db, "user@example.com")

	profile, err := reg.Users.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.Avatar)

	uploaded, err := reg.Images.UploadAvatar(ctx, user.ID, models.OwnerTypeUser, 0, testImage(t, 40, 40))
	require.NoError(t, err)

	profile, err = reg.Users.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Avatar)
	assert.Equal(t, uploaded.ID, profile.Avatar.ID)
	assert.Equal(t, uploaded.ThumbnailPath, profile.Avatar.ThumbnailPath)
}
