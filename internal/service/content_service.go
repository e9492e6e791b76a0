package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type ContentService struct {
	contentRepo repository.ContentRepository
	topicRepo   repository.TopicRepository
	tagRepo     repository.TagRepository
}

type CreateContentInput struct {
	AuthorID uint
	Title    string
	Body     string
	Publish  bool
	TopicID  uint
	Tags     []string
}

type UpdateContentInput struct {
	UserID    uint
	ContentID uint
	Title     *string
	Body      *string
	Publish   *bool
	TopicID   *uint
	Tags      []string
}

func NewContentService(
	contentRepo repository.ContentRepository,
	topicRepo repository.TopicRepository,
	tagRepo repository.TagRepository,
) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		topicRepo:   topicRepo,
		tagRepo:     tagRepo,
	}
}

const (
	maxTitleLen = 200
	maxTagsPer  = 10
)

func (s *ContentService) CreateContent(ctx context.Context, in CreateContentInput) (*models.Content, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Tags) > maxTagsPer {
		return nil, models.NewValidationError("Too many tags (max 10)")
	}
	if in.TopicID == 0 {
		return nil, models.NewValidationError("Topic is required")
	}
	if _, err := s.topicRepo.GetByID(ctx, in.TopicID); err != nil {
		return nil, err
	}

	content := &models.Content{
		Title:    in.Title,
		Body:     in.Body,
		Publish:  in.Publish,
		AuthorID: in.AuthorID,
		TopicID:  in.TopicID,
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	if len(in.Tags) > 0 {
		tags, err := s.tagRepo.FindOrCreateByTitles(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.contentRepo.ReplaceTags(ctx, content, tags); err != nil {
			return nil, err
		}
	}

	return s.contentRepo.GetByID(ctx, content.ID, in.AuthorID)
}

// GetContent retrieves one content. A draft is only visible to its author;
// everyone else gets a not-found, never a hint that the draft exists.
func (s *ContentService) GetContent(ctx context.Context, contentID, currentUserID uint) (*models.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID, currentUserID)
	if err != nil {
		return nil, err
	}
	if !content.Publish && content.AuthorID != currentUserID {
		return nil, models.NewNotFoundError("Content", contentID)
	}
	return content, nil
}

func (s *ContentService) ListContents(ctx context.Context, currentUserID uint, limit, offset int) ([]models.Content, error) {
	return s.contentRepo.ListPublished(ctx, currentUserID, limit, offset)
}

func (s *ContentService) SearchContents(ctx context.Context, query string, currentUserID uint, limit, offset int) ([]models.Content, error) {
	if query == "" {
		return s.contentRepo.ListPublished(ctx, currentUserID, limit, offset)
	}
	return s.contentRepo.SearchPublished(ctx, query, currentUserID, limit, offset)
}

func (s *ContentService) ListContentsByTag(ctx context.Context, tagTitle string, currentUserID uint, limit, offset int) ([]models.Content, error) {
	if tagTitle == "" {
		return nil, models.NewValidationError("Tag is required")
	}
	return s.contentRepo.ListPublishedByTag(ctx, tagTitle, currentUserID, limit, offset)
}

func (s *ContentService) ListContentsByTopic(ctx context.Context, topicTitle string, currentUserID uint, limit, offset int) ([]models.Content, error) {
	topic, err := s.topicRepo.GetByTitle(ctx, topicTitle)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.ListPublishedByTopic(ctx, topic.ID, currentUserID, limit, offset)
}

func (s *ContentService) UpdateContent(ctx context.Context, in UpdateContentInput) (*models.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, in.ContentID, in.UserID)
	if err != nil {
		return nil, err
	}
	if content.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own contents")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title is required")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		content.Title = *in.Title
	}
	if in.Body != nil {
		if *in.Body == "" {
			return nil, models.NewValidationError("Body is required")
		}
		content.Body = *in.Body
	}
	if in.Publish != nil {
		content.Publish = *in.Publish
	}
	if in.TopicID != nil {
		if _, err := s.topicRepo.GetByID(ctx, *in.TopicID); err != nil {
			return nil, err
		}
		content.TopicID = *in.TopicID
	}
	if len(in.Tags) > maxTagsPer {
		return nil, models.NewValidationError("Too many tags (max 10)")
	}

	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	if in.Tags != nil {
		tags, err := s.tagRepo.FindOrCreateByTitles(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.contentRepo.ReplaceTags(ctx, content, tags); err != nil {
			return nil, err
		}
	}

	return s.contentRepo.GetByID(ctx, content.ID, in.UserID)
}

func (s *ContentService) DeleteContent(ctx context.Context, contentID, userID uint) error {
	content, err := s.contentRepo.GetByID(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if content.AuthorID != userID {
		return models.NewForbiddenError("You can only delete your own contents")
	}
	return s.contentRepo.Delete(ctx, content)
}
