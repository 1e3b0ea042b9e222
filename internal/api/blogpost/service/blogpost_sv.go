package blogpostService

import (
	"errors"
	"mime/multipart"
	"time"

	"blogapp-be/internal/api/blogpost"
	"blogapp-be/internal/entity"
	contextPkg "blogapp-be/pkg/context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

// parsePostID maps malformed ids to ErrPostNotFound so an absent and an
// unparseable id are indistinguishable to clients.
func parsePostID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, blogpost.ErrPostNotFound
	}
	return oid, nil
}

func (s *blogPostService) CreateBlogPost(c context.Context, req blogpost.CreateBlogPostRequest, author entity.AuthorLoginData, coverFile *multipart.FileHeader) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.BlogPost{}, err
	}

	var coverURL string
	if coverFile != nil {
		if err := s.utils.ValidateImageFile(coverFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid cover file")
			return entity.BlogPost{}, blogpost.ErrInvalidFileType
		}

		uploadedURL, err := s.s3Client.UploadFile(coverFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload cover")
			return entity.BlogPost{}, blogpost.ErrFailedToUpload
		}

		coverURL = uploadedURL
	}

	readTime := entity.ReadTime{
		Value: req.ReadTimeValue,
		Unit:  req.ReadTimeUnit,
	}
	if readTime.Value == 0 {
		readTime.Value = s.utils.EstimateReadTime(req.Content)
	}
	if readTime.Unit == "" {
		readTime.Unit = "minutes"
	}

	now := time.Now()

	// Author identity is snapshotted from the authenticated principal,
	// never taken from client-supplied fields.
	post := entity.BlogPost{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Category:    req.Category,
		Cover:       coverURL,
		Content:     req.Content,
		Author:      author.Name,
		AuthorEmail: author.Email,
		ReadTime:    readTime,
		Comments:    []entity.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.BlogPosts.CreateBlogPost(c, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog post")
		return entity.BlogPost{}, blogpost.ErrCreatePost
	}

	s.notifyPostPublished(requestID, post)

	return post, nil
}

// notifyPostPublished mails the author after a successful create. Mail is
// optional config; failures only log and never affect the response.
func (s *blogPostService) notifyPostPublished(requestID string, post entity.BlogPost) {
	if s.smtpMailer == nil || !s.smtpMailer.Enabled() {
		return
	}

	go func() {
		if err := s.smtpMailer.SendPostPublished(post.AuthorEmail, post.Author, post.Title, post.Category); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send post published mail")
		}
	}()
}

func (s *blogPostService) GetAllBlogPosts(c context.Context, titleFilter string) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	posts, err := repo.BlogPosts.GetAllBlogPosts(c, titleFilter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list blog posts")
		return nil, err
	}

	return posts, nil
}

func (s *blogPostService) GetBlogPostByID(c context.Context, id string) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parsePostID(id)
	if err != nil {
		return entity.BlogPost{}, err
	}

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.BlogPost{}, err
	}

	post, err := repo.BlogPosts.GetBlogPostByID(c, oid)
	if err != nil {
		return entity.BlogPost{}, err
	}

	return post, nil
}

func (s *blogPostService) UpdateBlogPost(c context.Context, id string, req blogpost.UpdateBlogPostRequest) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parsePostID(id)
	if err != nil {
		return entity.BlogPost{}, err
	}

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.BlogPost{}, err
	}

	post, err := repo.BlogPosts.GetBlogPostByID(c, oid)
	if err != nil {
		return entity.BlogPost{}, err
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Category != "" {
		post.Category = req.Category
	}
	if req.Content != "" {
		post.Content = req.Content
		post.ReadTime.Value = s.utils.EstimateReadTime(req.Content)
	}
	if req.Cover != "" {
		post.Cover = req.Cover
	}
	post.UpdatedAt = time.Now()

	if err := repo.BlogPosts.ReplaceBlogPost(c, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog post")
		if errors.Is(err, blogpost.ErrPostNotFound) {
			return entity.BlogPost{}, err
		}
		return entity.BlogPost{}, blogpost.ErrUpdatePost
	}

	return post, nil
}

func (s *blogPostService) DeleteBlogPost(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parsePostID(id)
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

	if err := repo.BlogPosts.DeleteBlogPost(c, oid); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog post")
		if errors.Is(err, blogpost.ErrPostNotFound) {
			return err
		}
		return blogpost.ErrDeletePost
	}

	if post.Cover != "" {
		if err := s.s3Client.DeleteFile(post.Cover); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Warn("Failed to delete cover object")
		}
	}

	return nil
}

func (s *blogPostService) UpdateCover(c context.Context, id string, coverFile *multipart.FileHeader) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	if coverFile == nil {
		return entity.BlogPost{}, blogpost.ErrNoFileUploaded
	}

	if err := s.utils.ValidateImageFile(coverFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid cover file")
		return entity.BlogPost{}, blogpost.ErrInvalidFileType
	}

	oid, err := parsePostID(id)
	if err != nil {
		return entity.BlogPost{}, err
	}

	repo, err := s.blogPostRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.BlogPost{}, err
	}

	post, err := repo.BlogPosts.GetBlogPostByID(c, oid)
	if err != nil {
		return entity.BlogPost{}, err
	}

	uploadedURL, err := s.s3Client.UploadFile(coverFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload cover")
		return entity.BlogPost{}, blogpost.ErrFailedToUpload
	}

	post.Cover = uploadedURL
	post.UpdatedAt = time.Now()

	if err := repo.BlogPosts.ReplaceBlogPost(c, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to persist cover update")
		if errors.Is(err, blogpost.ErrPostNotFound) {
			return entity.BlogPost{}, err
		}
		return entity.BlogPost{}, blogpost.ErrUpdatePost
	}

	return post, nil
}
