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

func uploadMarketImages(t *testing.T, reg *Registry, userID uint, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		resp, err := reg.Images.UploadMarketImage(context.Background(), userID, testImage(t, 32, 32))
		require.NoError(t, err)
		ids = append(ids, resp.ImageID)
	}
	return ids
}

func TestMarketCreateAttachesImagesWithSingleCover(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	seller := createUser(t, db, "seller@example.com")

	imageIDs := uploadMarketImages(t, reg, seller.ID, 3)
	cover := imageIDs[1]

	resp, err := reg.Market.Create(ctx, seller.ID, dto.CreateMarketAdRequest{
		Title:        "Jazz Bass",
		CityID:       1,
		Price:        120000,
		ImageIDs:     imageIDs,
		CoverImageID: &cover,
	})
	require.NoError(t, err)

	var covers int64
	require.NoError(t, db.Model(&models.MarketImage{}).
		Where("ad_id = ? AND is_cover = ?", resp.AdID, true).
		Count(&covers).Error)
	assert.Equal(t, int64(1), covers)

	detail, err := reg.Market.Get(ctx, resp.AdID)
	require.NoError(t, err)
	require.Len(t, detail.Images, 3)
	assert.Equal(t, cover, detail.Images[0].ID)
	assert.True(t, detail.Images[0].IsCover)
}

func TestAttachedMarketImageCannotBeDeletedDirectly(t *testing.T) {
	reg, db, store, _ := newTestRegistry(t)
	ctx := context.Background()
	seller := createUser(t, db, "seller@example.com")

	imageIDs := uploadMarketImages(t, reg, seller.ID, 2)
	resp, err := reg.Market.Create(ctx, seller.ID, dto.CreateMarketAdRequest{
		Title:    "Amp",
		CityID:   1,
		Price:    50000,
		ImageIDs: imageIDs,
	})
	require.NoError(t, err)

	err = reg.Images.DeleteMarketImage(ctx, seller.ID, imageIDs[0])
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeImageAttached, appErr.Code)

	// Dropping the image through an ad update removes its row and
	// backing files.
	img, err := reg.Images.marketImageRepo.GetByID(ctx, imageIDs[0])
	require.NoError(t, err)

	err = reg.Market.Update(ctx, seller.ID, resp.AdID, dto.UpdateMarketAdRequest{
		Title:    "Amp",
		CityID:   1,
		Price:    50000,
		ImageIDs: imageIDs[1:],
	})
	require.NoError(t, err)

	_, err = reg.Images.marketImageRepo.GetByID(ctx, imageIDs[0])
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	exists, err := store.Exists(ctx, img.Path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMarketImageOwnershipChecks(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	seller := createUser(t, db, "seller@example.com")
	other := createUser(t, db, "other@example.com")

	imageIDs := uploadMarketImages(t, reg, seller.ID, 1)

	// A foreign image cannot be attached.
	_, err := reg.Market.Create(ctx, other.ID, dto.CreateMarketAdRequest{
		Title:    "Stolen",
		CityID:   1,
		Price:    100,
		ImageIDs: imageIDs,
	})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Nor deleted by a non-owner.
	err = reg.Images.DeleteMarketImage(ctx, other.ID, imageIDs[0])
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// The owner deletes an unattached image along with its files.
	require.NoError(t, reg.Images.DeleteMarketImage(ctx, seller.ID, imageIDs[0]))
}

func TestMarketDeleteRemovesGallery(t *testing.T) {
	reg, db, store, _ := newTestRegistry(t)
	ctx := context.Background()
	seller := createUser(t, db, "seller@example.com")

	imageIDs := uploadMarketImages(t, reg, seller.ID, 2)
	resp, err := reg.Market.Create(ctx, seller.ID, dto.CreateMarketAdRequest{
		Title:    "Drum Kit",
		CityID:   1,
		Price:    300000,
		ImageIDs: imageIDs,
	})
	require.NoError(t, err)

	require.NoError(t, reg.Market.Delete(ctx, seller.ID, resp.AdID))

	var imageCount int64
	require.NoError(t, db.Model(&models.MarketImage{}).Where("ad_id = ?", resp.AdID).Count(&imageCount).Error)
	assert.Zero(t, imageCount)
	assert.Zero(t, store.count())

	_, err = reg.Market.Get(ctx, resp.AdID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMarketSearchFiltersAndCoverThumbnails(t *testing.T) {
	reg, db, _, _ := newTestRegistry(t)
	ctx := context.Background()
	seller := createUser(t, db, "seller@example.com")

	for i := 0; i < 3; i++ {
		ids := uploadMarketImages(t, reg, seller.ID, 1)
		_, err := reg.Market.Create(ctx, seller.ID, dto.CreateMarketAdRequest{
			Title:        "Pedal",
			CityID:       uint(i%2 + 1),
			Price:        int64(1000 * (i + 1)),
			ImageIDs:     ids,
			CoverImageID: &ids[0],
		})
		require.NoError(t, err)
	}

	city := uint(1)
	minPrice := int64(1500)
	page, err := reg.Market.Search(ctx, repositories.MarketAdFilter{
		CityID:   &city,
		MinPrice: &minPrice,
		Page:     1,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.NotNil(t, page.Items[0].CoverThumbnail)
}
