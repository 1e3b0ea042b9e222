package config

import (
	"fmt"
	"os"

	mongoDB "blogapp-be/database/mongo"
	authHandler "blogapp-be/internal/api/auth/handler"
	authService "blogapp-be/internal/api/auth/service"
	authorHandler "blogapp-be/internal/api/author/handler"
	authorRepository "blogapp-be/internal/api/author/repository"
	authorService "blogapp-be/internal/api/author/service"
	blogpostHandler "blogapp-be/internal/api/blogpost/handler"
	blogpostRepository "blogapp-be/internal/api/blogpost/repository"
	blogpostService "blogapp-be/internal/api/blogpost/service"
	"blogapp-be/internal/middleware"
	"blogapp-be/pkg/bcrypt"
	"blogapp-be/pkg/google"
	"blogapp-be/pkg/redis"
	"blogapp-be/pkg/s3"
	"blogapp-be/pkg/smtp"
	"blogapp-be/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *mongo.Database
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := mongoDB.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Blog Post Domain
	blogpostRepo := blogpostRepository.New(s.db, s.log)
	blogpostServices := blogpostService.New(s.log, blogpostRepo, s.s3Client, s.smtpMailer, s.utils)
	blogpostHandlers := blogpostHandler.New(s.log, s.validator, s.middleware, blogpostServices)

	// Author Domain
	authorRepo := authorRepository.New(s.db, s.log)
	authorServices := authorService.New(s.log, authorRepo, s.s3Client, s.bcryptUtils, s.utils)
	authorHandlers := authorHandler.New(s.log, s.validator, s.middleware, authorServices)

	// Auth Domain
	authServices := authService.New(s.log, authorRepo, s.redisServer, s.googleProvider, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices, s.googleProvider)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, blogpostHandlers, authorHandlers, authHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
