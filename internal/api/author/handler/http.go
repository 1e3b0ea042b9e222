package authorHandler

import (
	authorService "blogapp-be/internal/api/author/service"
	"blogapp-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthorHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	authorService authorService.IAuthorService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authorService.IAuthorService,
) *AuthorHandler {
	return &AuthorHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		authorService: as,
	}
}

func (h *AuthorHandler) Start(srv fiber.Router) {
	authors := srv.Group("/authors")

	// Registration and reads are public
	authors.Get("", h.GetAllAuthors)
	authors.Get("/:id", h.GetAuthorByID)
	authors.Post("", h.Register)

	authors.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateAuthor)
	authors.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteAuthor)
	authors.Patch("/:authorId/avatar", h.middleware.NewTokenMiddleware, h.UpdateAvatar)
}
