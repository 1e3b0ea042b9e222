package blogpostHandler

import (
	blogpostService "blogapp-be/internal/api/blogpost/service"
	"blogapp-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogPostHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	blogPostService blogpostService.IBlogPostService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogpostService.IBlogPostService,
) *BlogPostHandler {
	return &BlogPostHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		blogPostService: bs,
	}
}

func (h *BlogPostHandler) Start(srv fiber.Router) {
	posts := srv.Group("/blogPosts")

	// Public endpoints (no auth required)
	posts.Get("", h.GetAllBlogPosts)
	posts.Get("/:id", h.GetBlogPostByID)

	// Every mutating post route names the token middleware explicitly
	posts.Post("", h.middleware.NewTokenMiddleware, h.CreateBlogPost)
	posts.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlogPost)
	posts.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBlogPost)
	posts.Patch("/:blogPostId/cover", h.middleware.NewTokenMiddleware, h.UpdateCover)

	// Comments stay public: anonymous readers comment
	posts.Get("/:id/comments", h.ListComments)
	posts.Get("/:id/comments/:commentId", h.GetComment)
	posts.Post("/:id/comments", h.AddComment)
	posts.Put("/:id/comments/:commentId", h.UpdateComment)
	posts.Delete("/:id/comments/:commentId", h.DeleteComment)
}
