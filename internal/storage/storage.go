package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("file not found")

// Storage is the content store behind image uploads. Paths are
// hierarchical keys (e.g. "users/169..abc.jpg", "users/thumbnails/...")
// stored verbatim in the database.
type Storage interface {
	Save(ctx context.Context, path string, data []byte, contentType string) error
	Get(ctx context.Context, path string) ([]byte, error)
	// Delete tolerates already-missing files.
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// URL returns the public address for a stored path.
	URL(path string) string
}
