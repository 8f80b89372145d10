package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"badum_backend/internal/auth"
	"badum_backend/internal/config"
	"badum_backend/internal/database"
	"badum_backend/internal/email"
	"badum_backend/internal/middleware"
	"badum_backend/internal/models"
	"badum_backend/internal/services"
	"badum_backend/internal/storage"
)

// memStorage keeps stored files in memory.
type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

func (s *memStorage) Save(_ context.Context, path string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *memStorage) Get(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (s *memStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *memStorage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *memStorage) URL(path string) string {
	return "http://test/" + path
}

func newUploadTestRouter(t *testing.T) (*services.Registry, *gorm.DB, func(userID uint) *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour, 48*time.Hour)
	upload := config.UploadConfig{MaxFileSize: 20 << 20, ResizeThreshold: 5 << 20, ThumbnailSize: 300}
	reg := services.NewRegistry(db, newMemStorage(), tokens, email.NewMockProvider(), upload)

	router := func(userID uint) *gin.Engine {
		r := gin.New()
		group := r.Group("/api/v1")
		group.Use(func(c *gin.Context) {
			c.Set(middleware.UserIDKey, userID)
			c.Next()
		})
		NewUploadHandler(reg.Images, upload.MaxFileSize).RegisterRoutes(group)
		return r
	}
	return reg, db, router
}

func seedUser(t *testing.T, db *gorm.DB, mail string, admin bool) *models.User {
	t.Helper()
	user := models.User{
		Email:        mail,
		PasswordHash: "x",
		Name:         "Test User",
		Status:       models.UserStatusActive,
		IsAdmin:      admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 6), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func avatarCount(t *testing.T, db *gorm.DB, ownerID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Image{}).
		Where("owner_id = ? AND owner_type = ?", ownerID, models.OwnerTypeUser).
		Count(&n).Error)
	return n
}

func TestDeleteAvatarTargetsAnotherUserForAdmins(t *testing.T) {
	reg, db, router := newUploadTestRouter(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", true)
	target := seedUser(t, db, "target@example.com", false)

	_, err := reg.Images.UploadAvatar(ctx, target.ID, models.OwnerTypeUser, 0, smallPNG(t))
	require.NoError(t, err)
	require.Equal(t, int64(1), avatarCount(t, db, target.ID))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/avatar?user_id="+strconv.Itoa(int(target.ID)), nil)
	router(admin.ID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(0), avatarCount(t, db, target.ID))
}

func TestDeleteAvatarForeignTargetForbiddenForRegularUsers(t *testing.T) {
	reg, db, router := newUploadTestRouter(t)
	ctx := context.Background()
	caller := seedUser(t, db, "caller@example.com", false)
	target := seedUser(t, db, "target@example.com", false)

	_, err := reg.Images.UploadAvatar(ctx, target.ID, models.OwnerTypeUser, 0, smallPNG(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/avatar?user_id="+strconv.Itoa(int(target.ID)), nil)
	router(caller.ID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, int64(1), avatarCount(t, db, target.ID))
}

func TestDeleteAvatarDefaultsToCaller(t *testing.T) {
	reg, db, router := newUploadTestRouter(t)
	ctx := context.Background()
	caller := seedUser(t, db, "caller@example.com", false)

	_, err := reg.Images.UploadAvatar(ctx, caller.ID, models.OwnerTypeUser, 0, smallPNG(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/avatar", nil)
	router(caller.ID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(0), avatarCount(t, db, caller.ID))
}
