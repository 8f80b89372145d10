package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is the sentinel for a missing record. Services map it to
// the API-level NotFound error.
var ErrNotFound = errors.New("record not found")

// translate maps gorm's record-not-found to the package sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
