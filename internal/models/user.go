// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the Inkwell application.
// Email is the login identity; the password column only ever holds a bcrypt hash.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Name        string         `json:"name,omitempty"`
	Bio         string         `gorm:"type:text" json:"bio,omitempty"`
	Avatar      string         `json:"avatar,omitempty"`
	Password    string         `gorm:"not null" json:"-"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	IsStaff     bool           `gorm:"default:false" json:"-"`
	IsSuperuser bool           `gorm:"default:false" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Contents    []Content      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"contents,omitempty"`
}
