package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines persistence operations for topics.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	GetByID(ctx context.Context, id uint) (*models.Topic, error)
	GetByTitle(ctx context.Context, title string) (*models.Topic, error)
	Create(ctx context.Context, topic *models.Topic) error
}

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	// List returns tags ordered by title, optionally filtered by a substring
	// match on the title.
	List(ctx context.Context, search string, limit, offset int) ([]models.Tag, error)
	// FindOrCreateByTitles resolves tag titles to rows, creating missing ones.
	FindOrCreateByTitles(ctx context.Context, titles []string) ([]models.Tag, error)
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository returns a new TopicRepository implementation.
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := cache.Aside(ctx, cache.TopicsListKey, &topics, cache.TopicsTTL, func() error {
		if err := r.db.WithContext(ctx).Order("title ASC").Find(&topics).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Topic", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &topic, nil
}

func (r *topicRepository) GetByTitle(ctx context.Context, title string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Topic", title)
		}
		return nil, models.NewInternalError(err)
	}
	return &topic, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.TopicsListKey)
	return nil
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	q := r.db.WithContext(ctx).
		Order("title ASC").
		Limit(limit).
		Offset(offset)
	if search != "" {
		q = q.Where("lower(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := q.Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) FindOrCreateByTitles(ctx context.Context, titles []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(titles))
	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true

		var tag models.Tag
		err := r.db.WithContext(ctx).Where("title = ?", title).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Title: title}
			err = r.db.WithContext(ctx).Create(&tag).Error
		}
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
