package services

import (
	"testing"

	"blogsite/app/models"
	"blogsite/app/repositories"
	"blogsite/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService() (*CommentService, *mock.PostRepository, *mock.CommentRepository) {
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	return NewCommentService(commentRepo, postRepo), postRepo, commentRepo
}

func TestCreateComment(t *testing.T) {
	service, postRepo, _ := newCommentService()

	post := draftPost("Target Post")
	post.UserID = 1
	post.Author = "Site Admin"
	require.NoError(t, postRepo.Create(post))

	reader := &models.User{ID: 2, Name: "Reader", Email: "reader@example.com"}
	comment, err := service.CreateComment(post.ID, reader, "great writeup")
	require.NoError(t, err)

	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, reader.ID, comment.UserID)
	assert.Equal(t, "Reader", comment.Author)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	service, _, commentRepo := newCommentService()

	reader := &models.User{ID: 2, Name: "Reader"}
	_, err := service.CreateComment(42, reader, "into the void")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	comments, err := commentRepo.ListByPost(42)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCreateCommentInvalidBody(t *testing.T) {
	service, postRepo, _ := newCommentService()

	post := draftPost("Another Post")
	post.UserID = 1
	post.Author = "Site Admin"
	require.NoError(t, postRepo.Create(post))

	reader := &models.User{ID: 2, Name: "Reader"}
	_, err := service.CreateComment(post.ID, reader, "")
	assert.Error(t, err)
}

func TestListPostComments(t *testing.T) {
	service, postRepo, commentRepo := newCommentService()

	post := draftPost("Listed Post")
	post.UserID = 1
	post.Author = "Site Admin"
	require.NoError(t, postRepo.Create(post))
	require.NoError(t, commentRepo.Create(&models.Comment{
		PostID: post.ID, UserID: 2, Author: "Reader", Body: "one",
	}))
	require.NoError(t, commentRepo.Create(&models.Comment{
		PostID: post.ID, UserID: 3, Author: "Other", Body: "two",
	}))

	comments, err := service.ListPostComments(post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	_, err = service.ListPostComments(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
