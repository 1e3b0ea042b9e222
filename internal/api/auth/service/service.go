package authService

import (
	"context"
	"net/url"

	"blogapp-be/internal/api/auth"
	authorRepository "blogapp-be/internal/api/author/repository"
	"blogapp-be/internal/entity"
	"blogapp-be/pkg/bcrypt"
	"blogapp-be/pkg/google"
	"blogapp-be/pkg/redis"
	"blogapp-be/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	RefreshToken(c context.Context, req auth.RefreshTokenRequest) (auth.LoginResponse, error)
	Logout(c context.Context, req auth.RefreshTokenRequest) error
	GetProfile(c context.Context, authorData entity.AuthorLoginData) (entity.Author, error)

	LoginGoogle() (*url.URL, error)
	LoginWithGoogle(c context.Context, user auth.GoogleUser) (auth.LoginResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authorRepo     authorRepository.Repository
	redisServer    redis.IRedis
	googleProvider google.ItfGoogle
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	authorRepo authorRepository.Repository,
	redisServer redis.IRedis,
	googleProvider google.ItfGoogle,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authorRepo:     authorRepo,
		redisServer:    redisServer,
		googleProvider: googleProvider,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}

func MakeAuthorData(a entity.Author) map[string]interface{} {
	return map[string]interface{}{
		"id":    a.ID.Hex(),
		"email": a.Email,
		"name":  a.FullName(),
	}
}
