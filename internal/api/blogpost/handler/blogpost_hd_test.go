package blogpostHandler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapp-be/internal/api/blogpost"
	"blogapp-be/internal/entity"
	"blogapp-be/internal/middleware"
	jwtPkg "blogapp-be/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubBlogPostService struct {
	posts []entity.BlogPost
	post  entity.BlogPost
	err   error

	createdReq    blogpost.CreateBlogPostRequest
	createdAuthor entity.AuthorLoginData
}

func (s *stubBlogPostService) CreateBlogPost(_ context.Context, req blogpost.CreateBlogPostRequest, author entity.AuthorLoginData, _ *multipart.FileHeader) (entity.BlogPost, error) {
	s.createdReq = req
	s.createdAuthor = author
	return s.post, s.err
}

func (s *stubBlogPostService) GetAllBlogPosts(_ context.Context, _ string) ([]entity.BlogPost, error) {
	return s.posts, s.err
}

func (s *stubBlogPostService) GetBlogPostByID(_ context.Context, _ string) (entity.BlogPost, error) {
	return s.post, s.err
}

func (s *stubBlogPostService) UpdateBlogPost(_ context.Context, _ string, _ blogpost.UpdateBlogPostRequest) (entity.BlogPost, error) {
	return s.post, s.err
}

func (s *stubBlogPostService) DeleteBlogPost(_ context.Context, _ string) error {
	return s.err
}

func (s *stubBlogPostService) UpdateCover(_ context.Context, _ string, _ *multipart.FileHeader) (entity.BlogPost, error) {
	return s.post, s.err
}

func (s *stubBlogPostService) ListComments(_ context.Context, _ string) ([]entity.Comment, error) {
	return s.post.Comments, s.err
}

func (s *stubBlogPostService) GetComment(_ context.Context, _ string, _ string) (entity.Comment, error) {
	if len(s.post.Comments) > 0 {
		return s.post.Comments[0], s.err
	}
	return entity.Comment{}, s.err
}

func (s *stubBlogPostService) AddComment(_ context.Context, _ string, req blogpost.CreateCommentRequest) (entity.Comment, error) {
	return entity.Comment{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}, s.err
}

func (s *stubBlogPostService) UpdateComment(_ context.Context, _ string, _ string, req blogpost.UpdateCommentRequest) (entity.Comment, error) {
	return entity.Comment{Content: req.Content}, s.err
}

func (s *stubBlogPostService) DeleteComment(_ context.Context, _ string, _ string) error {
	return s.err
}

func newTestApp(svc *stubBlogPostService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})

	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	h := New(logger, validator.New(), mw, svc)
	h.Start(app.Group("/api/v1"))

	return app
}

func signTestToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    primitive.NewObjectID().Hex(),
		"email": "jane@example.com",
		"name":  "Jane Roe",
	}, jwtPkg.AccessTokenSecretEnv, time.Hour)
	assert.NoError(t, err)

	return token
}

func TestGetAllBlogPostsRoute(t *testing.T) {
	svc := &stubBlogPostService{
		posts: []entity.BlogPost{
			{
				ID:       primitive.NewObjectID(),
				Title:    "First Post",
				Comments: []entity.Comment{},
			},
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogPosts", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var posts []blogpost.BlogPostResponse
	assert.NoError(t, jsoniter.Unmarshal(body, &posts))
	assert.Len(t, posts, 1)
	assert.Equal(t, "First Post", posts[0].Title)
}

func TestGetBlogPostByIDRouteNotFound(t *testing.T) {
	svc := &stubBlogPostService{err: blogpost.ErrPostNotFound}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogPosts/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload map[string]string
	assert.NoError(t, jsoniter.Unmarshal(body, &payload))
	assert.Equal(t, "blog post not found", payload["message"])
}

func TestCreateBlogPostRoute(t *testing.T) {
	t.Run("rejects missing token", func(t *testing.T) {
		app := newTestApp(&stubBlogPostService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogPosts", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("creates post from multipart form", func(t *testing.T) {
		token := signTestToken(t)

		svc := &stubBlogPostService{
			post: entity.BlogPost{
				ID:       primitive.NewObjectID(),
				Title:    "Created",
				Comments: []entity.Comment{},
			},
		}
		app := newTestApp(svc)

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		assert.NoError(t, form.WriteField("title", "Created"))
		assert.NoError(t, form.WriteField("category", "go"))
		assert.NoError(t, form.WriteField("content", "body text"))
		assert.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogPosts", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		assert.Equal(t, "Created", svc.createdReq.Title)
		assert.Equal(t, "jane@example.com", svc.createdAuthor.Email)
		assert.Equal(t, "Jane Roe", svc.createdAuthor.Name)
	})

	t.Run("rejects non-numeric read time", func(t *testing.T) {
		token := signTestToken(t)
		app := newTestApp(&stubBlogPostService{})

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		assert.NoError(t, form.WriteField("title", "Created"))
		assert.NoError(t, form.WriteField("category", "go"))
		assert.NoError(t, form.WriteField("content", "body text"))
		assert.NoError(t, form.WriteField("readTimeValue", "ten"))
		assert.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogPosts", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload map[string]string
		assert.NoError(t, jsoniter.Unmarshal(body, &payload))
		assert.Equal(t, "invalid blog post data", payload["message"])
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		token := signTestToken(t)
		app := newTestApp(&stubBlogPostService{})

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		assert.NoError(t, form.WriteField("title", "x"))
		assert.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogPosts", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAddCommentRoute(t *testing.T) {
	svc := &stubBlogPostService{}
	app := newTestApp(svc)

	payload, err := jsoniter.Marshal(blogpost.CreateCommentRequest{
		Name:    "Reader",
		Email:   "reader@example.com",
		Content: "great write-up",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/blogPosts/"+primitive.NewObjectID().Hex()+"/comments",
		bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var comment blogpost.CommentResponse
	assert.NoError(t, jsoniter.Unmarshal(body, &comment))
	assert.Equal(t, "great write-up", comment.Content)
}

func TestDeleteBlogPostRoute(t *testing.T) {
	token := signTestToken(t)
	app := newTestApp(&stubBlogPostService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/blogPosts/"+primitive.NewObjectID().Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload map[string]string
	assert.NoError(t, jsoniter.Unmarshal(body, &payload))
	assert.Equal(t, "Blog post deleted successfully", payload["message"])
}
