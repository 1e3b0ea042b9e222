package authorService

import (
	"context"
	"mime/multipart"

	"blogapp-be/internal/api/author"
	authorRepository "blogapp-be/internal/api/author/repository"
	"blogapp-be/internal/entity"
	"blogapp-be/pkg/bcrypt"
	"blogapp-be/pkg/s3"
	"blogapp-be/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IAuthorService interface {
	Register(c context.Context, req author.CreateAuthorRequest) (entity.Author, error)
	GetAllAuthors(c context.Context) ([]entity.Author, error)
	GetAuthorByID(c context.Context, id string) (entity.Author, error)
	UpdateAuthor(c context.Context, id string, req author.UpdateAuthorRequest) (entity.Author, error)
	DeleteAuthor(c context.Context, id string) error
	UpdateAvatar(c context.Context, id string, avatarFile *multipart.FileHeader) (entity.Author, error)
}

type authorService struct {
	log        *logrus.Logger
	authorRepo authorRepository.Repository
	s3Client   s3.ItfS3
	bcrypt     bcrypt.IBcrypt
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	repo authorRepository.Repository,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthorService {
	return &authorService{
		log:        log,
		authorRepo: repo,
		s3Client:   s3Client,
		bcrypt:     bcryptUtils,
		utils:      utils,
	}
}
