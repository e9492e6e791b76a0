package models

import (
	"time"

	"gorm.io/gorm"
)

// Content represents an authored item in the Inkwell application.
// Unpublished contents are drafts: excluded from every public listing and
// from tag/topic filters, visible by id only to their author.
type Content struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	Body     string  `gorm:"type:text;not null" json:"body"`
	Publish  bool    `gorm:"default:false;index" json:"publish"`
	AuthorID uint    `gorm:"not null;index" json:"author_id"`
	Author   User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	TopicID  uint    `gorm:"not null;index" json:"topic_id"`
	Topic    *Topic  `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	Tags     []Tag   `gorm:"many2many:content_tags" json:"tags,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this content (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
