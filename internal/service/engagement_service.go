package service

import (
	"context"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type EngagementService struct {
	engagementRepo repository.EngagementRepository
	contentRepo    repository.ContentRepository
}

func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	contentRepo repository.ContentRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		contentRepo:    contentRepo,
	}
}

// LikeContent records a like. Liking twice is rejected; the unique index on
// (user, content) closes the window between the check and the insert.
func (s *EngagementService) LikeContent(ctx context.Context, userID, contentID uint) error {
	if _, err := s.contentRepo.GetByID(ctx, contentID, userID); err != nil {
		return err
	}

	liked, err := s.engagementRepo.IsLiked(ctx, userID, contentID)
	if err != nil {
		return err
	}
	if liked {
		return models.NewAlreadyLikedError()
	}

	created, err := s.engagementRepo.CreateLike(ctx, userID, contentID)
	if err != nil {
		return err
	}
	if !created {
		return models.NewAlreadyLikedError()
	}
	middleware.EngagementActions.WithLabelValues("like").Inc()
	return nil
}

func (s *EngagementService) UnlikeContent(ctx context.Context, userID, contentID uint) error {
	if _, err := s.contentRepo.GetByID(ctx, contentID, userID); err != nil {
		return err
	}

	deleted, err := s.engagementRepo.DeleteLike(ctx, userID, contentID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotLikedError()
	}
	middleware.EngagementActions.WithLabelValues("unlike").Inc()
	return nil
}

// BookmarkContent saves a published content for the user. Drafts cannot be
// bookmarked and duplicates are rejected.
func (s *EngagementService) BookmarkContent(ctx context.Context, userID, contentID uint) (*models.Bookmark, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID, userID)
	if err != nil {
		return nil, err
	}
	if !content.Publish {
		return nil, models.NewContentNotPublishedError()
	}

	bookmarked, err := s.engagementRepo.IsBookmarked(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if bookmarked {
		return nil, models.NewAlreadyBookmarkedError()
	}

	bookmark, err := s.engagementRepo.CreateBookmark(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, models.NewAlreadyBookmarkedError()
	}
	middleware.EngagementActions.WithLabelValues("bookmark").Inc()
	bookmark.Content = *content
	return bookmark, nil
}

func (s *EngagementService) ListBookmarks(ctx context.Context, userID uint, limit, offset int) ([]models.Bookmark, error) {
	return s.engagementRepo.ListBookmarksByUser(ctx, userID, limit, offset)
}

// RemoveBookmark deletes a bookmark by id. Bookmarks are private to their
// owner, so another user's bookmark id reads as not found rather than
// confirming the bookmark exists.
func (s *EngagementService) RemoveBookmark(ctx context.Context, userID, bookmarkID uint) error {
	bookmark, err := s.engagementRepo.GetBookmarkByID(ctx, bookmarkID)
	if err != nil {
		return err
	}
	if bookmark.UserID != userID {
		return models.NewNotFoundError("Bookmark", bookmarkID)
	}
	if err := s.engagementRepo.DeleteBookmark(ctx, bookmark); err != nil {
		return err
	}
	middleware.EngagementActions.WithLabelValues("unbookmark").Inc()
	return nil
}
