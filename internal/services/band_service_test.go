package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

func TestCreateBandCreatorBecomesAdmin(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{
		Name:     "The Testers",
		GenreIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	var members []models.BandMember
	require.NoError(t, db.Where("band_id = ?", band.ID).Find(&members).Error)
	require.Len(t, members, 1)
	assert.Equal(t, creator.ID, members[0].UserID)
	assert.Equal(t, models.RoleAdmin, members[0].Role)
	assert.ElementsMatch(t, []uint{1, 2}, band.GenreIDs)
}

func TestBandUpdateRequiresAdminRole(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")
	member := createUser(t, db, "member@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Old Name"})
	require.NoError(t, err)

	err = reg.Bands.AddMember(ctx, creator.ID, band.ID, dto.AddMemberRequest{UserID: member.ID})
	require.NoError(t, err)

	req := dto.UpdateBandRequest{Name: "New Name"}

	_, err = reg.Bands.Update(ctx, member.ID, band.ID, req)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	updated, err := reg.Bands.Update(ctx, creator.ID, band.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestBandAdCreationRoleCheck(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")
	member := createUser(t, db, "member@example.com")
	outsider := createUser(t, db, "outsider@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Band"})
	require.NoError(t, err)
	require.NoError(t, reg.Bands.AddMember(ctx, creator.ID, band.ID, dto.AddMemberRequest{UserID: member.ID}))

	req := dto.CreateBandAdRequest{InstrumentID: 1, Description: "need a drummer"}

	for _, userID := range []uint{member.ID, outsider.ID} {
		_, err := reg.BandAds.Create(ctx, userID, band.ID, req)
		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
	}

	resp, err := reg.BandAds.Create(ctx, creator.ID, band.ID, req)
	require.NoError(t, err)
	assert.NotZero(t, resp.AdID)
}

func TestBandAdCarriesPreferenceFlags(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Band"})
	require.NoError(t, err)

	_, err = reg.BandAds.Create(ctx, creator.ID, band.ID, dto.CreateBandAdRequest{
		InstrumentID: 1,
		Experience:   3,
		ExpAction:    true,
		SelfInstr:    true,
	})
	require.NoError(t, err)

	ads, err := reg.BandAds.ListByBand(ctx, band.ID)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, 3, ads[0].Experience)
	assert.True(t, ads[0].ExpAction)
	assert.True(t, ads[0].SelfInstr)
}

func TestBandAdSearchExperienceIsExactMatch(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Band"})
	require.NoError(t, err)

	for _, exp := range []int{1, 5} {
		_, err := reg.BandAds.Create(ctx, creator.ID, band.ID, dto.CreateBandAdRequest{
			InstrumentID: 1,
			Experience:   exp,
		})
		require.NoError(t, err)
	}

	exp := 1
	page, err := reg.Public.SearchBandAds(ctx, repositories.BandAdFilter{
		Experience: &exp,
		Page:       1,
		Limit:      10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].Experience)
}

func TestBandGenreRewrite(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{
		Name:     "Band",
		GenreIDs: []uint{1, 2, 3},
	})
	require.NoError(t, err)

	updated, err := reg.Bands.Update(ctx, creator.ID, band.ID, dto.UpdateBandRequest{
		Name:     "Band",
		GenreIDs: []uint{3, 4},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{3, 4}, updated.GenreIDs)

	// Same set again is idempotent.
	updated, err = reg.Bands.Update(ctx, creator.ID, band.ID, dto.UpdateBandRequest{
		Name:     "Band",
		GenreIDs: []uint{3, 4},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{3, 4}, updated.GenreIDs)
}

func TestAddMemberDuplicateConflict(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")
	member := createUser(t, db, "member@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Band"})
	require.NoError(t, err)

	require.NoError(t, reg.Bands.AddMember(ctx, creator.ID, band.ID, dto.AddMemberRequest{UserID: member.ID}))

	err = reg.Bands.AddMember(ctx, creator.ID, band.ID, dto.AddMemberRequest{UserID: member.ID})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestRemoveMemberDropsInstruments(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")
	member := createUser(t, db, "member@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Band"})
	require.NoError(t, err)
	require.NoError(t, reg.Bands.AddMember(ctx, creator.ID, band.ID, dto.AddMemberRequest{UserID: member.ID}))
	require.NoError(t, reg.Bands.UpdateMemberInstruments(ctx, creator.ID, band.ID, member.ID,
		dto.UpdateMemberInstrumentsRequest{InstrumentIDs: []uint{1, 2}}))

	require.NoError(t, reg.Bands.RemoveMember(ctx, creator.ID, band.ID, member.ID))

	var count int64
	require.NoError(t, db.Model(&models.BandMemberInstrument{}).
		Where("band_id = ? AND user_id = ?", band.ID, member.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteBandRemovesEverything(t *testing.T) {
	reg, db, store, _ := newTestRegistry(t)
	ctx := context.Background()
	creator := createUser(t, db, "creator@example.com")

	band, err := reg.Bands.Create(ctx, creator.ID, dto.CreateBandRequest{Name: "Band", GenreIDs: []uint{1}})
	require.NoError(t, err)

	_, err = reg.Images.UploadAvatar(ctx, creator.ID, models.OwnerTypeGroup, band.ID, testImage(t, 64, 64))
	require.NoError(t, err)
	require.Equal(t, 2, store.count())

	_, err = reg.BandAds.Create(ctx, creator.ID, band.ID, dto.CreateBandAdRequest{InstrumentID: 1})
	require.NoError(t, err)

	require.NoError(t, reg.Bands.Delete(ctx, creator.ID, band.ID))

	_, err = reg.Bands.GetByID(ctx, band.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	var memberCount, adCount, imageCount int64
	require.NoError(t, db.Model(&models.BandMember{}).Where("band_id = ?", band.ID).Count(&memberCount).Error)
	require.NoError(t, db.Model(&models.BandAd{}).Where("band_id = ?", band.ID).Count(&adCount).Error)
	require.NoError(t, db.Model(&models.Image{}).
		Where("owner_id = ? AND owner_type = ?", band.ID, models.OwnerTypeGroup).
		Count(&imageCount).Error)
	assert.Zero(t, memberCount)
	assert.Zero(t, adCount)
	assert.Zero(t, imageCount)
	assert.Zero(t, store.count())
}

func TestAdminCreateBandForApplicant(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	admin := createAdmin(t, db, "admin@example.com")
	target := createUser(t, db, "target@example.com")
	regular := createUser(t, db, "regular@example.com")

	phone := "+77001234567"
	req := dto.AdminCreateBandRequest{
		CreateBandRequest: dto.CreateBandRequest{Name: "Applicant Band"},
		UserID:            target.ID,
		ApplicantPhone:    &phone,
	}

	_, err := reg.Bands.AdminCreate(ctx, regular.ID, req)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	band, err := reg.Bands.AdminCreate(ctx, admin.ID, req)
	require.NoError(t, err)

	member, err := reg.Authorizer.bandRepo.GetMember(ctx, band.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, member.Role)
}
