package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateLoadsAuthor(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	comment := &models.Comment{Body: "great read", AuthorID: user.ID, ContentID: content.ID}
	require.NoError(t, repo.Create(ctx, comment))
	require.NotZero(t, comment.ID)
	assert.Equal(t, user.Username, comment.Author.Username)
}

func TestCommentRepository_ListByContentOrdered(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	first := &models.Comment{Body: "first", AuthorID: user.ID, ContentID: content.ID}
	require.NoError(t, repo.Create(ctx, first))
	reply := &models.Comment{Body: "reply to first", AuthorID: user.ID, ContentID: content.ID, ReplyID: &first.ID}
	require.NoError(t, repo.Create(ctx, reply))

	comments, err := repo.ListByContent(ctx, content.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
	require.NotNil(t, comments[1].ReplyID)
	assert.Equal(t, first.ID, *comments[1].ReplyID)
}

func TestCommentRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	comment := &models.Comment{Body: "tpyo", AuthorID: user.ID, ContentID: content.ID}
	require.NoError(t, repo.Create(ctx, comment))

	comment.Body = "typo"
	require.NoError(t, repo.Update(ctx, comment))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "typo", got.Body)

	require.NoError(t, repo.Delete(ctx, got))

	_, err = repo.GetByID(ctx, comment.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
