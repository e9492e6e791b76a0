package models

import "time"

// Topic is reference data; every content belongs to exactly one topic.
type Topic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;index" json:"title"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag is free-form labelling attached to contents. Titles are not unique;
// tags are shared reference data created implicitly by authenticated users.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;index" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
