package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByContentFn func(context.Context, uint, int, int) ([]models.Comment, error)
	updateFn        func(context.Context, *models.Comment) error
	deleteFn        func(context.Context, *models.Comment) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByContent(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByContentFn(ctx, contentID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, c *models.Comment) error {
	return s.deleteFn(ctx, c)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, ContentID: 1}, nil
		},
		listByContentFn: func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn: func(_ context.Context, _ *models.Comment) error { return nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopContentRepo())
	ctx := context.Background()

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, ContentID: 1})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("body too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:    1,
			ContentID: 1,
			Body:      strings.Repeat("x", 10001),
		})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("missing content propagates not found", func(t *testing.T) {
		t.Parallel()
		contentRepo := noopContentRepo()
		contentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Content, error) {
			return nil, models.NewNotFoundError("Content", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), contentRepo)
		_, err := svc2.CreateComment(ctx, CreateCommentInput{UserID: 1, ContentID: 99, Body: "hi"})
		assertCode(t, err, models.CodeNotFound)
	})
}

func TestCommentService_CreateComment_ReplyTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reply to a comment of the same content", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, ContentID: 5}, nil
		}
		svc := NewCommentService(commentRepo, noopContentRepo())
		replyID := uint(3)
		comment, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID: 1, ContentID: 5, Body: "agreed", ReplyID: &replyID,
		})
		require.NoError(t, err)
		require.NotNil(t, comment.ReplyID)
		assert.Equal(t, replyID, *comment.ReplyID)
	})

	t.Run("reply to a comment of another content", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, ContentID: 6}, nil
		}
		svc := NewCommentService(commentRepo, noopContentRepo())
		replyID := uint(3)
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID: 1, ContentID: 5, Body: "agreed", ReplyID: &replyID,
		})
		assertCode(t, err, models.CodeInvalidReplyTarget)
	})

	t.Run("reply to a missing comment", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(commentRepo, noopContentRepo())
		replyID := uint(404)
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID: 1, ContentID: 5, Body: "agreed", ReplyID: &replyID,
		})
		assertCode(t, err, models.CodeInvalidReplyTarget)
	})
}

func TestCommentService_UpdateComment_AnyUserMayEdit(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, ContentID: 1, AuthorID: 10, Body: "old"}, nil
	}
	svc := NewCommentService(commentRepo, noopContentRepo())

	comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID: 1, CommentID: 1, Body: "edited by someone else",
	})
	require.NoError(t, err)
	assert.Equal(t, "edited by someone else", comment.Body)
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	deleted := false
	commentRepo := noopCommentRepo()
	commentRepo.deleteFn = func(_ context.Context, _ *models.Comment) error {
		deleted = true
		return nil
	}
	svc := NewCommentService(commentRepo, noopContentRepo())

	comment, err := svc.DeleteComment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), comment.ID)
	assert.True(t, deleted)
}
