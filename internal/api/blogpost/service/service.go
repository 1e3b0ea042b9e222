package blogpostService

import (
	"context"
	"mime/multipart"

	"blogapp-be/internal/api/blogpost"
	blogpostRepository "blogapp-be/internal/api/blogpost/repository"
	"blogapp-be/internal/entity"
	"blogapp-be/pkg/s3"
	"blogapp-be/pkg/smtp"
	"blogapp-be/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogPostService interface {
	CreateBlogPost(c context.Context, req blogpost.CreateBlogPostRequest, author entity.AuthorLoginData, coverFile *multipart.FileHeader) (entity.BlogPost, error)
	GetAllBlogPosts(c context.Context, titleFilter string) ([]entity.BlogPost, error)
	GetBlogPostByID(c context.Context, id string) (entity.BlogPost, error)
	UpdateBlogPost(c context.Context, id string, req blogpost.UpdateBlogPostRequest) (entity.BlogPost, error)
	DeleteBlogPost(c context.Context, id string) error
	UpdateCover(c context.Context, id string, coverFile *multipart.FileHeader) (entity.BlogPost, error)

	ListComments(c context.Context, postID string) ([]entity.Comment, error)
	GetComment(c context.Context, postID string, commentID string) (entity.Comment, error)
	AddComment(c context.Context, postID string, req blogpost.CreateCommentRequest) (entity.Comment, error)
	UpdateComment(c context.Context, postID string, commentID string, req blogpost.UpdateCommentRequest) (entity.Comment, error)
	DeleteComment(c context.Context, postID string, commentID string) error
}

type blogPostService struct {
	log          *logrus.Logger
	blogPostRepo blogpostRepository.Repository
	s3Client     s3.ItfS3
	smtpMailer   smtp.ItfSmtp
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	repo blogpostRepository.Repository,
	s3Client s3.ItfS3,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) IBlogPostService {
	return &blogPostService{
		log:          log,
		blogPostRepo: repo,
		s3Client:     s3Client,
		smtpMailer:   smtpMailer,
		utils:        utils,
	}
}
