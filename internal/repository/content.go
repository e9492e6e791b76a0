package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ContentRepository defines persistence operations for contents.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	// GetByID loads a single content with its author, topic, tags, and the
	// computed likes_count/liked columns for the given viewer (0 = anonymous).
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Content, error)
	ListPublished(ctx context.Context, currentUserID uint, limit, offset int) ([]models.Content, error)
	SearchPublished(ctx context.Context, query string, currentUserID uint, limit, offset int) ([]models.Content, error)
	ListPublishedByAuthor(ctx context.Context, authorID uint, currentUserID uint, limit, offset int) ([]models.Content, error)
	ListPublishedByTag(ctx context.Context, tagTitle string, currentUserID uint, limit, offset int) ([]models.Content, error)
	ListPublishedByTopic(ctx context.Context, topicID uint, currentUserID uint, limit, offset int) ([]models.Content, error)
	Update(ctx context.Context, content *models.Content) error
	ReplaceTags(ctx context.Context, content *models.Content, tags []models.Tag) error
	Delete(ctx context.Context, content *models.Content) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository returns a new ContentRepository implementation.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// applyContentDetails adds the computed likes_count and liked columns to a
// contents query. Subqueries keep the SQL portable across postgres and sqlite.
func applyContentDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	return db.Select(
		"contents.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.content_id = contents.id) AS likes_count, "+
			"EXISTS(SELECT 1 FROM likes WHERE likes.content_id = contents.id AND likes.user_id = ?) AS liked",
		currentUserID,
	)
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID serves the detail read through the cache. The cached copy is the
// anonymous view of the row; liked is per-viewer, so it is computed with a
// separate query on every read instead of being stored in Redis.
func (r *contentRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Content, error) {
	var content models.Content
	key := cache.ContentKey(id)

	err := cache.Aside(ctx, key, &content, cache.ContentTTL, func() error {
		err := applyContentDetails(r.db.WithContext(ctx), 0).
			Preload("Author").
			Preload("Topic").
			Preload("Tags").
			First(&content, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Content", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if currentUserID != 0 {
		var count int64
		err := r.db.WithContext(ctx).Model(&models.Like{}).
			Where("content_id = ? AND user_id = ?", id, currentUserID).
			Count(&count).Error
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		content.Liked = count > 0
	}
	return &content, nil
}

func (r *contentRepository) listPublished(ctx context.Context, currentUserID uint, limit, offset int, scope func(*gorm.DB) *gorm.DB) ([]models.Content, error) {
	var contents []models.Content
	q := applyContentDetails(r.db.WithContext(ctx), currentUserID).
		Where("contents.publish = ?", true).
		Preload("Author").
		Preload("Topic").
		Preload("Tags").
		Order("contents.created_at DESC").
		Limit(limit).
		Offset(offset)
	if scope != nil {
		q = scope(q)
	}
	if err := q.Find(&contents).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return contents, nil
}

func (r *contentRepository) ListPublished(ctx context.Context, currentUserID uint, limit, offset int) ([]models.Content, error) {
	return r.listPublished(ctx, currentUserID, limit, offset, nil)
}

func (r *contentRepository) SearchPublished(ctx context.Context, query string, currentUserID uint, limit, offset int) ([]models.Content, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.listPublished(ctx, currentUserID, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.Where("lower(contents.title) LIKE ? OR lower(contents.body) LIKE ?", pattern, pattern)
	})
}

func (r *contentRepository) ListPublishedByAuthor(ctx context.Context, authorID uint, currentUserID uint, limit, offset int) ([]models.Content, error) {
	return r.listPublished(ctx, currentUserID, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.Where("contents.author_id = ?", authorID)
	})
}

func (r *contentRepository) ListPublishedByTag(ctx context.Context, tagTitle string, currentUserID uint, limit, offset int) ([]models.Content, error) {
	return r.listPublished(ctx, currentUserID, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"contents.id IN (SELECT content_tags.content_id FROM content_tags JOIN tags ON tags.id = content_tags.tag_id WHERE tags.title = ?)",
			tagTitle,
		)
	})
}

func (r *contentRepository) ListPublishedByTopic(ctx context.Context, topicID uint, currentUserID uint, limit, offset int) ([]models.Content, error) {
	return r.listPublished(ctx, currentUserID, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.Where("contents.topic_id = ?", topicID)
	})
}

func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	if err := r.db.WithContext(ctx).Save(content).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateContent(ctx, content.ID)
	return nil
}

func (r *contentRepository) ReplaceTags(ctx context.Context, content *models.Content, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).Model(content).Association("Tags").Replace(tags); err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateContent(ctx, content.ID)
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, content *models.Content) error {
	if err := r.db.WithContext(ctx).Select("Tags").Delete(content).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateContent(ctx, content.ID)
	return nil
}
