package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/repositories"
	"badum_backend/internal/services/dto"
)

func TestMusicianAdCreateAndOwnerScopedRead(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")

	resp, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID: 3,
		Description:  "bass player",
		GenreIDs:     []uint{1, 2},
	})
	require.NoError(t, err)
	require.NotZero(t, resp.AdID)

	ad, err := reg.MusicianAds.GetMy(ctx, owner.ID, resp.AdID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), ad.InstrumentID)
	assert.ElementsMatch(t, []uint{1, 2}, ad.GenreIDs)

	// A different principal cannot tell the ad exists.
	_, err = reg.MusicianAds.GetMy(ctx, other.ID, resp.AdID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMusicianAdPreferenceFlagsRoundTrip(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")

	resp, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID:  1,
		Experience:    4,
		ExpAction:     true,
		SelfInstr:     true,
		ExpBand:       true,
		ExpBandAction: true,
		Base:          true,
		SelfCreation:  true,
		ComProject:    true,
		CoverBand:     true,
	})
	require.NoError(t, err)

	ad, err := reg.MusicianAds.GetMy(ctx, owner.ID, resp.AdID)
	require.NoError(t, err)
	assert.Equal(t, 4, ad.Experience)
	assert.True(t, ad.ExpAction)
	assert.True(t, ad.SelfInstr)
	assert.True(t, ad.ExpBand)
	assert.True(t, ad.ExpBandAction)
	assert.True(t, ad.Base)
	assert.True(t, ad.SelfCreation)
	assert.True(t, ad.ComProject)
	assert.True(t, ad.CoverBand)

	// An update clears flags the request leaves unset.
	ad, err = reg.MusicianAds.Update(ctx, owner.ID, resp.AdID, dto.UpdateMusicianAdRequest{
		InstrumentID: 1,
		SelfInstr:    true,
	})
	require.NoError(t, err)
	assert.True(t, ad.SelfInstr)
	assert.False(t, ad.ExpAction)
	assert.False(t, ad.CoverBand)
}

func TestMusicianAdTagRewriteIdempotent(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")

	resp, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID: 1,
		GenreIDs:     []uint{1, 2, 3},
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ad, err := reg.MusicianAds.Update(ctx, owner.ID, resp.AdID, dto.UpdateMusicianAdRequest{
			InstrumentID: 1,
			GenreIDs:     []uint{2, 5},
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{2, 5}, ad.GenreIDs)
	}

	// Clearing the set leaves no tags behind.
	ad, err := reg.MusicianAds.Update(ctx, owner.ID, resp.AdID, dto.UpdateMusicianAdRequest{
		InstrumentID: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, ad.GenreIDs)
}

func TestMusicianAdDelete(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")

	resp, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID: 1,
		GenreIDs:     []uint{1},
	})
	require.NoError(t, err)

	err = reg.MusicianAds.Delete(ctx, other.ID, resp.AdID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	require.NoError(t, reg.MusicianAds.Delete(ctx, owner.ID, resp.AdID))

	_, err = reg.MusicianAds.GetMy(ctx, owner.ID, resp.AdID)
	require.Error(t, err)
}

func TestAdminCreateRequiresAdminFlag(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	admin := createAdmin(t, db, "admin@example.com")
	regular := createUser(t, db, "regular@example.com")
	target := createUser(t, db, "target@example.com")

	name := "Applicant"
	phone := "+77001112233"
	req := dto.AdminCreateMusicianAdRequest{
		CreateMusicianAdRequest: dto.CreateMusicianAdRequest{InstrumentID: 2},
		UserID:                  target.ID,
		ApplicantName:           &name,
		ApplicantPhone:          &phone,
	}

	_, err := reg.MusicianAds.AdminCreate(ctx, regular.ID, req)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	resp, err := reg.MusicianAds.AdminCreate(ctx, admin.ID, req)
	require.NoError(t, err)

	detail, err := reg.Public.GetMusicianAd(ctx, resp.AdID)
	require.NoError(t, err)
	assert.Equal(t, "Applicant", detail.AuthorName)
	assert.Equal(t, phone, detail.AuthorPhone)
}

func TestMusicianSearchPaginationAndDistinctTotal(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")

	genreID := uint(7)
	var adIDs []uint
	for i := 0; i < 25; i++ {
		// Two genres per ad so the join fans out.
		resp, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
			InstrumentID: 1,
			GenreIDs:     []uint{genreID, 99},
		})
		require.NoError(t, err)
		adIDs = append(adIDs, resp.AdID)
	}

	page, err := reg.Public.SearchMusicians(ctx, repositories.MusicianAdFilter{
		GenreID: &genreID,
		Page:    2,
		Limit:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	require.Len(t, page.Items, 10)

	// Page 2 with limit 10 holds items 11-20 of the set ordered by
	// descending id.
	for i, item := range page.Items {
		assert.Equal(t, adIDs[len(adIDs)-11-i], item.ID)
		assert.ElementsMatch(t, []uint{genreID, 99}, item.GenreIDs)
	}
}

func TestMusicianSearchFiltersAreConjunctive(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")

	city1, city2 := uint(1), uint(2)
	_, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID: 1, CityID: &city1, GenreIDs: []uint{1},
	})
	require.NoError(t, err)
	_, err = reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID: 1, CityID: &city2, GenreIDs: []uint{1},
	})
	require.NoError(t, err)
	_, err = reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
		InstrumentID: 2, CityID: &city1, GenreIDs: []uint{1},
	})
	require.NoError(t, err)

	instrument := uint(1)
	page, err := reg.Public.SearchMusicians(ctx, repositories.MusicianAdFilter{
		InstrumentID: &instrument,
		CityID:       &city1,
		Page:         1,
		Limit:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	// No filters returns everything.
	page, err = reg.Public.SearchMusicians(ctx, repositories.MusicianAdFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
}

func TestMusicianSearchExperienceIsExactMatch(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")

	for _, exp := range []int{1, 5} {
		_, err := reg.MusicianAds.Create(ctx, owner.ID, dto.CreateMusicianAdRequest{
			InstrumentID: 1,
			Experience:   exp,
		})
		require.NoError(t, err)
	}

	exp := 1
	page, err := reg.Public.SearchMusicians(ctx, repositories.MusicianAdFilter{
		Experience: &exp,
		Page:       1,
		Limit:      10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].Experience)
}
