package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUserAndContent(t *testing.T, db *gorm.DB) (*models.User, *models.Content) {
	t.Helper()
	ctx := context.Background()
	repo := NewContentRepository(db)

	user := &models.User{
		Email:    "author@example.com",
		Username: "author",
		Name:     "Author",
		Password: "hashed",
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	topic := &models.Topic{Title: "General"}
	require.NoError(t, NewTopicRepository(db).Create(ctx, topic))

	content := &models.Content{
		Title:    "First piece",
		Body:     "Body of the first piece",
		Publish:  true,
		AuthorID: user.ID,
		TopicID:  topic.ID,
	}
	require.NoError(t, repo.Create(ctx, content))
	return user, content
}

func TestEngagementRepository_LikeOnce(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	created, err := repo.CreateLike(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.True(t, created)

	liked, err := repo.IsLiked(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestEngagementRepository_DuplicateLikeIsNoOp(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	created, err := repo.CreateLike(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Second insert races against the unique index and must report no row.
	created, err = repo.CreateLike(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEngagementRepository_DeleteLike(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	deleted, err := repo.DeleteLike(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "deleting a missing like reports false")

	_, err = repo.CreateLike(ctx, user.ID, content.ID)
	require.NoError(t, err)

	deleted, err = repo.DeleteLike(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	liked, err := repo.IsLiked(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestEngagementRepository_BookmarkLifecycle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	user, content := seedUserAndContent(t, db)
	ctx := context.Background()

	created, err := repo.CreateBookmark(ctx, user.ID, content.ID)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotZero(t, created.ID)

	dup, err := repo.CreateBookmark(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.Nil(t, dup)

	bookmarks, err := repo.ListBookmarksByUser(ctx, user.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, content.ID, bookmarks[0].ContentID)
	assert.Equal(t, content.Title, bookmarks[0].Content.Title)

	bookmark, err := repo.GetBookmarkByID(ctx, bookmarks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, bookmark.UserID)

	require.NoError(t, repo.DeleteBookmark(ctx, bookmark))

	bookmarked, err := repo.IsBookmarked(ctx, user.ID, content.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestEngagementRepository_GetBookmarkByIDNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEngagementRepository(db)

	_, err := repo.GetBookmarkByID(context.Background(), 999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
