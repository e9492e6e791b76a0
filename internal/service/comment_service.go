package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	contentRepo repository.ContentRepository
}

type CreateCommentInput struct {
	UserID    uint
	ContentID uint
	Body      string
	ReplyID   *uint
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Body      string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	contentRepo repository.ContentRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
	}
}

const maxCommentLen = 10000

// CreateComment adds a comment to a content. A reply must target a comment
// that belongs to the same content; cross-content threading is rejected.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.contentRepo.GetByID(ctx, in.ContentID, 0); err != nil {
		return nil, err
	}

	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if in.ReplyID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ReplyID)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
				return nil, models.NewInvalidReplyTargetError()
			}
			return nil, err
		}
		if parent.ContentID != in.ContentID {
			return nil, models.NewInvalidReplyTargetError()
		}
	}

	comment := &models.Comment{
		Body:      in.Body,
		AuthorID:  in.UserID,
		ContentID: in.ContentID,
		ReplyID:   in.ReplyID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByContent(ctx, contentID, limit, offset)
}

// UpdateComment edits a comment's body. Any authenticated user may edit;
// comments carry no ownership restriction on mutation.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Body = in.Body
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.commentRepo.Delete(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
