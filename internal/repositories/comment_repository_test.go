package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confiance888/BlogMagment/internal/models"
)

func createComment(t *testing.T, repo *commentRepository, postID string, authorID int, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{PostID: postID, AuthorID: authorID, Content: content}
	require.NoError(t, repo.Create(context.Background(), comment))
	time.Sleep(2 * time.Millisecond)
	return comment
}

func TestCommentRepository_CreateAndGet(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))

	comment := createComment(t, repo, "post-1", 7, "nice post")

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())

	got, err := repo.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "post-1", got.PostID)
	assert.Equal(t, 7, got.AuthorID)
	assert.Equal(t, "nice post", got.Content)
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentRepository_Update(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))
	comment := createComment(t, repo, "post-1", 7, "original")

	comment.Content = "edited"
	require.NoError(t, repo.Update(context.Background(), comment))

	got, err := repo.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
}

func TestCommentRepository_Update_NotFound(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))

	err := repo.Update(context.Background(), &models.Comment{ID: "missing", Content: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentRepository_Delete(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))
	comment := createComment(t, repo, "post-1", 7, "doomed")

	require.NoError(t, repo.Delete(context.Background(), comment.ID))

	_, err := repo.GetByID(context.Background(), comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), comment.ID), ErrNotFound)
}

func TestCommentRepository_ListByPost_OrderedOldestFirst(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))
	for i := 1; i <= 3; i++ {
		createComment(t, repo, "post-1", 1, fmt.Sprintf("comment %d", i))
	}
	createComment(t, repo, "post-2", 1, "other post")

	comments, total, err := repo.ListByPost(context.Background(), "post-1", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 1", comments[0].Content)
	assert.Equal(t, "comment 2", comments[1].Content)
	assert.Equal(t, "comment 3", comments[2].Content)
}

func TestCommentRepository_ListByPost_Pagination(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))
	for i := 1; i <= 5; i++ {
		createComment(t, repo, "post-1", 1, fmt.Sprintf("comment %d", i))
	}

	page, total, err := repo.ListByPost(context.Background(), "post-1", 4, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, page, 1)
	assert.Equal(t, "comment 5", page[0].Content)
}

func TestCommentRepository_DeleteByPost(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))
	for i := 1; i <= 3; i++ {
		createComment(t, repo, "post-1", 1, fmt.Sprintf("comment %d", i))
	}
	survivor := createComment(t, repo, "post-2", 1, "unrelated")

	deleted, err := repo.DeleteByPost(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	_, total, err := repo.ListByPost(context.Background(), "post-1", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	// Comments on other posts are untouched
	got, err := repo.GetByID(context.Background(), survivor.ID)
	require.NoError(t, err)
	assert.Equal(t, "unrelated", got.Content)
}

func TestCommentRepository_DeleteByPost_NoComments(t *testing.T) {
	repo := NewCommentRepository(setupBadger(t))

	deleted, err := repo.DeleteByPost(context.Background(), "post-without-comments")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
