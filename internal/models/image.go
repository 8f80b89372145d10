package models

import "time"

// Image owner types for the avatar slot.
const (
	OwnerTypeUser  = "user"
	OwnerTypeGroup = "group"
)

// Image is an avatar record. The unique index enforces the single
// avatar slot per (owner_id, owner_type); replacement deletes the old
// row and inserts the new one in the same transaction.
type Image struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	OwnerID       uint   `gorm:"not null;uniqueIndex:idx_images_owner" json:"owner_id"`
	OwnerType     string `gorm:"size:16;not null;uniqueIndex:idx_images_owner" json:"owner_type"`
	Path          string `gorm:"size:512;not null" json:"path"`
	ThumbnailPath string `gorm:"size:512;not null" json:"thumbnail_path"`

	CreatedAt time.Time `json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}

// ValidOwnerType reports whether t is a recognized avatar owner type.
func ValidOwnerType(t string) bool {
	return t == OwnerTypeUser || t == OwnerTypeGroup
}
