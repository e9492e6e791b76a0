package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository defines persistence operations for likes and bookmarks.
type EngagementRepository interface {
	IsLiked(ctx context.Context, userID, contentID uint) (bool, error)
	// CreateLike inserts a like row, reporting whether the row was actually
	// created. A lost race against a concurrent like returns false, nil.
	CreateLike(ctx context.Context, userID, contentID uint) (bool, error)
	DeleteLike(ctx context.Context, userID, contentID uint) (bool, error)

	IsBookmarked(ctx context.Context, userID, contentID uint) (bool, error)
	// CreateBookmark inserts a bookmark row, returning nil if a concurrent
	// request already bookmarked the content.
	CreateBookmark(ctx context.Context, userID, contentID uint) (*models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, id uint) (*models.Bookmark, error)
	DeleteBookmark(ctx context.Context, bookmark *models.Bookmark) error
	ListBookmarksByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Bookmark, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository returns a new EngagementRepository implementation.
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) IsLiked(ctx context.Context, userID, contentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) CreateLike(ctx context.Context, userID, contentID uint) (bool, error) {
	like := models.Like{UserID: userID, ContentID: contentID, Liked: true}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidateContent(ctx, contentID)
	}
	return result.RowsAffected > 0, nil
}

func (r *engagementRepository) DeleteLike(ctx context.Context, userID, contentID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidateContent(ctx, contentID)
	}
	return result.RowsAffected > 0, nil
}

func (r *engagementRepository) IsBookmarked(ctx context.Context, userID, contentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) CreateBookmark(ctx context.Context, userID, contentID uint) (*models.Bookmark, error) {
	bookmark := models.Bookmark{UserID: userID, ContentID: contentID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&bookmark)
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &bookmark, nil
}

func (r *engagementRepository) GetBookmarkByID(ctx context.Context, id uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.WithContext(ctx).Preload("Content").First(&bookmark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Bookmark", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &bookmark, nil
}

func (r *engagementRepository) DeleteBookmark(ctx context.Context, bookmark *models.Bookmark) error {
	if err := r.db.WithContext(ctx).Delete(bookmark).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) ListBookmarksByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Content").
		Preload("Content.Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookmarks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return bookmarks, nil
}
