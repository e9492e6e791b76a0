package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// TaxonomyService serves the reference data contents hang off of: the
// curated topic list and the free-form tag vocabulary.
type TaxonomyService struct {
	topicRepo repository.TopicRepository
	tagRepo   repository.TagRepository
}

func NewTaxonomyService(topicRepo repository.TopicRepository, tagRepo repository.TagRepository) *TaxonomyService {
	return &TaxonomyService{topicRepo: topicRepo, tagRepo: tagRepo}
}

func (s *TaxonomyService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.List(ctx)
}

func (s *TaxonomyService) ListTags(ctx context.Context, search string, limit, offset int) ([]models.Tag, error) {
	return s.tagRepo.List(ctx, search, limit, offset)
}

// CreateTag registers a tag title, returning the existing row when the
// title is already known.
func (s *TaxonomyService) CreateTag(ctx context.Context, title string) (*models.Tag, error) {
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	const maxTagLen = 50
	if len(title) > maxTagLen {
		return nil, models.NewValidationError("Tag too long (max 50 characters)")
	}
	tags, err := s.tagRepo.FindOrCreateByTitles(ctx, []string{title})
	if err != nil {
		return nil, err
	}
	return &tags[0], nil
}
