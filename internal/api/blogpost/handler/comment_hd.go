package blogpostHandler

import (
	"errors"
	"time"

	"blogapp-be/internal/api/blogpost"
	contextPkg "blogapp-be/pkg/context"
	"blogapp-be/pkg/handlerUtil"
	"blogapp-be/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogPostHandler) ListComments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	postID := ctx.Params("id")
	if postID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID is required"), ctx.Path())
	}

	comments, err := h.blogPostService.ListComments(c, postID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_comments")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewCommentListResponse(comments))
	}
}

func (h *BlogPostHandler) GetComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	postID := ctx.Params("id")
	commentID := ctx.Params("commentId")
	if postID == "" || commentID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID and comment ID are required"), ctx.Path())
	}

	comment, err := h.blogPostService.GetComment(c, postID, commentID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewCommentResponse(comment))
	}
}

func (h *BlogPostHandler) AddComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add comment request")

	postID := ctx.Params("id")
	if postID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID is required"), ctx.Path())
	}

	var req blogpost.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	comment, err := h.blogPostService.AddComment(c, postID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, blogpost.NewCommentResponse(comment))
	}
}

func (h *BlogPostHandler) UpdateComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	postID := ctx.Params("id")
	commentID := ctx.Params("commentId")
	if postID == "" || commentID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID and comment ID are required"), ctx.Path())
	}

	var req blogpost.UpdateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	comment, err := h.blogPostService.UpdateComment(c, postID, commentID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogpost.NewCommentResponse(comment))
	}
}

func (h *BlogPostHandler) DeleteComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	postID := ctx.Params("id")
	commentID := ctx.Params("commentId")
	if postID == "" || commentID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog post ID and comment ID are required"), ctx.Path())
	}

	if err := h.blogPostService.DeleteComment(c, postID, commentID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Comment deleted successfully",
		})
	}
}
