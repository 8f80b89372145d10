package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"badum_backend/internal/auth"
	"badum_backend/internal/config"
	"badum_backend/internal/database"
	"badum_backend/internal/email"
	"badum_backend/internal/models"
	"badum_backend/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour, 48*time.Hour)
}

func newTestRegistry(t *testing.T) (*Registry, *gorm.DB, *fakeStorage, *email.MockProvider) {
	t.Helper()
	db := newTestDB(t)
	store := newFakeStorage()
	mailer := email.NewMockProvider()
	upload := config.UploadConfig{
		MaxFileSize:     20 << 20,
		ResizeThreshold: 5 << 20,
		ThumbnailSize:   300,
	}
	registry := NewRegistry(db, store, newTestTokens(), mailer, upload)
	return registry, db, store, mailer
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := createUser(t, db, email)
	user.IsAdmin = true
	require.NoError(t, db.Save(user).Error)
	return user
}

// fakeStorage keeps stored files in memory.
type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Save(_ context.Context, path string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) URL(path string) string {
	return "http://test/" + path
}

func (s *fakeStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// testImage returns a small encoded PNG.
func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
