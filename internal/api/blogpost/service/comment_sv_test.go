package blogpostService

import (
	"context"
	"testing"

	"blogapp-be/internal/api/blogpost"
	"blogapp-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func createPostWithService(t *testing.T, svc IBlogPostService) entity.BlogPost {
	t.Helper()

	post, err := svc.CreateBlogPost(context.Background(), blogpost.CreateBlogPostRequest{
		Title:    "Commented Post",
		Category: "go",
		Content:  "content worth commenting on",
	}, testAuthor, nil)
	assert.NoError(t, err)

	return post
}

func TestAddComment(t *testing.T) {
	t.Run("appends comments in order", func(t *testing.T) {
		svc, _, _ := newTestService()
		post := createPostWithService(t, svc)

		first, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
			Name:    "Reader One",
			Email:   "one@example.com",
			Content: "first!",
		})
		assert.NoError(t, err)
		assert.False(t, first.ID.IsZero())

		second, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
			Name:    "Reader Two",
			Email:   "two@example.com",
			Content: "second",
		})
		assert.NoError(t, err)

		comments, err := svc.ListComments(context.Background(), post.ID.Hex())
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, first.ID, comments[0].ID)
		assert.Equal(t, second.ID, comments[1].ID)
	})

	t.Run("unknown post yields not found", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.AddComment(context.Background(), primitive.NewObjectID().Hex(), blogpost.CreateCommentRequest{
			Name:    "Reader",
			Email:   "reader@example.com",
			Content: "hello",
		})
		assert.ErrorIs(t, err, blogpost.ErrPostNotFound)
	})
}

func TestGetComment(t *testing.T) {
	svc, _, _ := newTestService()
	post := createPostWithService(t, svc)

	added, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
		Name:    "Reader",
		Email:   "reader@example.com",
		Content: "nice post",
	})
	assert.NoError(t, err)

	t.Run("returns stored comment", func(t *testing.T) {
		comment, err := svc.GetComment(context.Background(), post.ID.Hex(), added.ID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, "nice post", comment.Content)
	})

	t.Run("unknown comment yields not found", func(t *testing.T) {
		_, err := svc.GetComment(context.Background(), post.ID.Hex(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, blogpost.ErrCommentNotFound)
	})

	t.Run("malformed comment id yields not found", func(t *testing.T) {
		_, err := svc.GetComment(context.Background(), post.ID.Hex(), "nope")
		assert.ErrorIs(t, err, blogpost.ErrCommentNotFound)
	})
}

func TestUpdateComment(t *testing.T) {
	svc, _, _ := newTestService()
	post := createPostWithService(t, svc)

	added, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
		Name:    "Reader",
		Email:   "reader@example.com",
		Content: "original",
	})
	assert.NoError(t, err)

	t.Run("replaces content only", func(t *testing.T) {
		updated, err := svc.UpdateComment(context.Background(), post.ID.Hex(), added.ID.Hex(), blogpost.UpdateCommentRequest{
			Content: "edited",
		})
		assert.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
		assert.Equal(t, "Reader", updated.Name)
		assert.Equal(t, "reader@example.com", updated.Email)
		assert.Equal(t, added.ID, updated.ID)
	})

	t.Run("unknown comment yields not found", func(t *testing.T) {
		_, err := svc.UpdateComment(context.Background(), post.ID.Hex(), primitive.NewObjectID().Hex(), blogpost.UpdateCommentRequest{
			Content: "edited",
		})
		assert.ErrorIs(t, err, blogpost.ErrCommentNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	svc, _, _ := newTestService()
	post := createPostWithService(t, svc)

	first, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
		Name:    "Reader One",
		Email:   "one@example.com",
		Content: "first",
	})
	assert.NoError(t, err)

	second, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
		Name:    "Reader Two",
		Email:   "two@example.com",
		Content: "second",
	})
	assert.NoError(t, err)

	t.Run("removes only the targeted comment", func(t *testing.T) {
		err := svc.DeleteComment(context.Background(), post.ID.Hex(), first.ID.Hex())
		assert.NoError(t, err)

		comments, err := svc.ListComments(context.Background(), post.ID.Hex())
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, second.ID, comments[0].ID)
	})

	t.Run("deleting again yields not found", func(t *testing.T) {
		err := svc.DeleteComment(context.Background(), post.ID.Hex(), first.ID.Hex())
		assert.ErrorIs(t, err, blogpost.ErrCommentNotFound)
	})
}

func TestCommentsGoneWithDeletedPost(t *testing.T) {
	svc, _, _ := newTestService()
	post := createPostWithService(t, svc)

	added, err := svc.AddComment(context.Background(), post.ID.Hex(), blogpost.CreateCommentRequest{
		Name:    "Reader",
		Email:   "reader@example.com",
		Content: "soon to be orphaned",
	})
	assert.NoError(t, err)

	err = svc.DeleteBlogPost(context.Background(), post.ID.Hex())
	assert.NoError(t, err)

	t.Run("fetching the comment yields not found", func(t *testing.T) {
		_, err := svc.GetComment(context.Background(), post.ID.Hex(), added.ID.Hex())
		assert.ErrorIs(t, err, blogpost.ErrPostNotFound)
	})

	t.Run("listing comments yields not found", func(t *testing.T) {
		_, err := svc.ListComments(context.Background(), post.ID.Hex())
		assert.ErrorIs(t, err, blogpost.ErrPostNotFound)
	})
}
