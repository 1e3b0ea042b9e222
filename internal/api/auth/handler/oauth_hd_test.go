package authHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"blogapp-be/internal/api/auth"
	"blogapp-be/internal/entity"
	"blogapp-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
	googleOAuth "golang.org/x/oauth2/google"
)

type stubAuthService struct {
	res auth.LoginResponse
	err error

	googleLogins int
}

func (s *stubAuthService) Login(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
	return s.res, s.err
}

func (s *stubAuthService) RefreshToken(_ context.Context, _ auth.RefreshTokenRequest) (auth.LoginResponse, error) {
	return s.res, s.err
}

func (s *stubAuthService) Logout(_ context.Context, _ auth.RefreshTokenRequest) error {
	return s.err
}

func (s *stubAuthService) GetProfile(_ context.Context, _ entity.AuthorLoginData) (entity.Author, error) {
	return entity.Author{}, s.err
}

func (s *stubAuthService) LoginGoogle() (*url.URL, error) {
	return &url.URL{Scheme: "https", Host: "accounts.google.com", Path: "/o/oauth2/auth"}, s.err
}

func (s *stubAuthService) LoginWithGoogle(_ context.Context, _ auth.GoogleUser) (auth.LoginResponse, error) {
	s.googleLogins++
	return s.res, s.err
}

type stubGoogleProvider struct {
	payload   []byte
	err       error
	exchanged bool
}

func (g *stubGoogleProvider) GetUserExchangeToken(_ *fiber.Ctx, _ string) ([]byte, error) {
	g.exchanged = true
	return g.payload, g.err
}

func (g *stubGoogleProvider) GetConfig() *oauth2.Config {
	return &oauth2.Config{Endpoint: googleOAuth.Endpoint}
}

func newOAuthTestApp(svc *stubAuthService, provider *stubGoogleProvider) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})

	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	h := New(logger, validator.New(), mw, svc, provider)
	h.Start(app.Group("/api/v1"))

	return app
}

func TestCallBackFromGoogleRoute(t *testing.T) {
	t.Run("rejects callback when no state is configured", func(t *testing.T) {
		t.Setenv("GOOGLE_STATE", "")

		svc := &stubAuthService{}
		provider := &stubGoogleProvider{}
		app := newOAuthTestApp(svc, provider)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/callback-gl?state=&code=c0de", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		assert.False(t, provider.exchanged)
		assert.Zero(t, svc.googleLogins)
	})

	t.Run("rejects mismatched state", func(t *testing.T) {
		t.Setenv("GOOGLE_STATE", "expected-state")

		provider := &stubGoogleProvider{}
		app := newOAuthTestApp(&stubAuthService{}, provider)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/callback-gl?state=wrong&code=c0de", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		assert.False(t, provider.exchanged)
	})

	t.Run("exchanges code when state matches", func(t *testing.T) {
		t.Setenv("GOOGLE_STATE", "expected-state")

		svc := &stubAuthService{res: auth.LoginResponse{AccessToken: "token"}}
		provider := &stubGoogleProvider{
			payload: []byte(`{"id":"g-1","email":"jane@example.com","name":"Jane Roe"}`),
		}
		app := newOAuthTestApp(svc, provider)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/callback-gl?state=expected-state&code=c0de", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, provider.exchanged)
		assert.Equal(t, 1, svc.googleLogins)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload auth.LoginResponse
		assert.NoError(t, jsoniter.Unmarshal(body, &payload))
		assert.Equal(t, "token", payload.AccessToken)
	})
}
