package models

import "time"

// Like represents a user's like on a content.
// The combination of UserID and ContentID must be unique; the index closes
// the race between concurrent duplicate like requests.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_content_like" json:"user_id"`
	ContentID uint      `gorm:"not null;uniqueIndex:idx_user_content_like" json:"content_id"`
	Liked     bool      `gorm:"default:true" json:"liked"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Content Content `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

// Bookmark represents a user saving a published content for later.
// At most one row per (user, content); unpublished contents cannot be bookmarked.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_content_bookmark" json:"user_id"`
	ContentID uint      `gorm:"not null;uniqueIndex:idx_user_content_bookmark" json:"content_id"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content Content `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"content"`
}
