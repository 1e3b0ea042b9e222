package blogpostService

import (
	"time"

	"blogapp-be/internal/api/blogpost"
	"blogapp-be/internal/entity"
	contextPkg "blogapp-be/pkg/context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

func parseCommentID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, blogpost.ErrCommentNotFound
	}
	return oid, nil
}

func (s *blogPostService) ListComments(c context.Context, postID string) ([]entity.Comment, error) {
	post, err := s.GetBlogPostByID(c, postID)
	if err != nil {
		return nil, err
	}

	return post.Comments, nil
}

func (s *blogPostService) GetComment(c context.Context, postID string, commentID string) (entity.Comment, error) {
	post, err := s.GetBlogPostByID(c, postID)
	if err != nil {
		return entity.Comment{}, err
	}

	oid, err := parseCommentID(commentID)
	if err != nil {
		return entity.Comment{}, err
	}

	idx := post.FindComment(oid)
	if idx < 0 {
		return entity.Comment{}, blogpost.ErrCommentNotFound
	}

	return post.Comments[idx], nil
}

// AddComment appends to the post's comment sequence and persists the whole
// document, so insertion order is preserved across reads.
func (s *blogPostService) AddComment(c context.Context, postID string, req blogpost.CreateCommentRequest) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parsePostID(postID)
	if err != nil {
		return entity.Comment{}, err
	}

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Comment{}, err
	}

	post, err := repo.BlogPosts.GetBlogPostByID(c, oid)
	if err != nil {
		return entity.Comment{}, err
	}

	comment := entity.Comment{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	post.Comments = append(post.Comments, comment)
	post.UpdatedAt = time.Now()

	if err := repo.BlogPosts.ReplaceBlogPost(c, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"post_id":    postID,
			"error":      err.Error(),
		}).Error("Failed to persist new comment")
		return entity.Comment{}, err
	}

	return comment, nil
}

// UpdateComment replaces only the content of the matching comment;
// commenter name and email are immutable.
func (s *blogPostService) UpdateComment(c context.Context, postID string, commentID string, req blogpost.UpdateCommentRequest) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parsePostID(postID)
	if err != nil {
		return entity.Comment{}, err
	}

	commentOID, err := parseCommentID(commentID)
	if err != nil {
		return entity.Comment{}, err
	}

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Comment{}, err
	}

	post, err := repo.BlogPosts.GetBlogPostByID(c, oid)
	if err != nil {
		return entity.Comment{}, err
	}

	idx := post.FindComment(commentOID)
	if idx < 0 {
		return entity.Comment{}, blogpost.ErrCommentNotFound
	}

	post.Comments[idx].Content = req.Content
	post.UpdatedAt = time.Now()

	if err := repo.BlogPosts.ReplaceBlogPost(c, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"post_id":    postID,
			"comment_id": commentID,
			"error":      err.Error(),
		}).Error("Failed to persist comment update")
		return entity.Comment{}, err
	}

	return post.Comments[idx], nil
}

func (s *blogPostService) DeleteComment(c context.Context, postID string, commentID string) error {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parsePostID(postID)
	if err != nil {
		return err
	}

	commentOID, err := parseCommentID(commentID)
	if err != nil {
		return err
	}

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	post, err := repo.BlogPosts.GetBlogPostByID(c, oid)
	if err != nil {
		return err
	}

	idx := post.FindComment(commentOID)
	if idx < 0 {
		return blogpost.ErrCommentNotFound
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	post.UpdatedAt = time.Now()

	if err := repo.BlogPosts.ReplaceBlogPost(c, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"post_id":    postID,
			"comment_id": commentID,
			"error":      err.Error(),
		}).Error("Failed to persist comment deletion")
		return err
	}

	return nil
}
