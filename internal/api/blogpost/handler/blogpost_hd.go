package blogpostHandler

import (
	"errors"
	"strconv"
	"time"

	"blogapp-be/internal/api/blogpost"
	contextPkg "blogapp-be/pkg/context"
	"blogapp-be/pkg/handlerUtil"
	jwtPkg "blogapp-be/pkg/jwt"
	"blogapp-be/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogPostHandler) GetAllBlogPosts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list blog posts request")

	titleFilter := ctx.Query("title")

	posts, err := h.blogPostService.GetAllBlogPosts(c, titleFilter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blog_posts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewBlogPostListResponse(posts))
	}
}

func (h *BlogPostHandler) GetBlogPostByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID is required"), ctx.Path())
	}

	post, err := h.blogPostService.GetBlogPostByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewBlogPostResponse(post))
	}
}

func (h *BlogPostHandler) CreateBlogPost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog post request")

	authorData, err := jwtPkg.GetAuthorLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	readTimeValue, err := strconv.Atoi(ctx.FormValue("readTimeValue", "0"))
	if err != nil || readTimeValue < 0 {
		return errHandler.Handle(ctx, requestID, blogpost.ErrInvalidPostData, ctx.Path(), "create_blog_post")
	}

	req := blogpost.CreateBlogPostRequest{
		Title:         ctx.FormValue("title"),
		Category:      ctx.FormValue("category"),
		Content:       ctx.FormValue("content"),
		ReadTimeValue: readTimeValue,
		ReadTimeUnit:  ctx.FormValue("readTimeUnit"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// Cover is optional on create
	coverFile, _ := ctx.FormFile("cover")

	post, err := h.blogPostService.CreateBlogPost(c, req, authorData, coverFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, blogpost.NewBlogPostResponse(post))
	}
}

func (h *BlogPostHandler) UpdateBlogPost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID is required"), ctx.Path())
	}

	var req blogpost.UpdateBlogPostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	post, err := h.blogPostService.UpdateBlogPost(c, id, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewBlogPostResponse(post))
	}
}

func (h *BlogPostHandler) DeleteBlogPost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID is required"), ctx.Path())
	}

	if err := h.blogPostService.DeleteBlogPost(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Blog post deleted successfully",
		})
	}
}

func (h *BlogPostHandler) UpdateCover(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("blogPostId")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID is required"), ctx.Path())
	}

	coverFile, err := ctx.FormFile("cover")
	if err != nil || coverFile == nil {
		return errHandler.Handle(ctx, requestID, blogpost.ErrNoFileUploaded, ctx.Path(), "update_cover")
	}

	post, err := h.blogPostService.UpdateCover(c, id, coverFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_cover")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewBlogPostResponse(post))
	}
}
