package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a content in the Inkwell application.
// ReplyID optionally references another comment; the referenced comment must
// belong to the same content, checked at write time rather than by the schema.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	ContentID uint           `gorm:"not null;index" json:"content_id"`
	ReplyID   *uint          `gorm:"index" json:"reply_id,omitempty"`
	Author    User           `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Content   Content        `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
