package authService

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"blogapp-be/internal/api/auth"
	"blogapp-be/internal/api/author"
	authorRepository "blogapp-be/internal/api/author/repository"
	"blogapp-be/internal/entity"
	"blogapp-be/pkg/bcrypt"
	"blogapp-be/pkg/redis"
	"blogapp-be/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	netcontext "golang.org/x/net/context"
)

type memAuthors struct {
	mu      sync.Mutex
	authors map[primitive.ObjectID]entity.Author
}

func newMemAuthors() *memAuthors {
	return &memAuthors{authors: make(map[primitive.ObjectID]entity.Author)}
}

func (m *memAuthors) CreateAuthor(_ netcontext.Context, a entity.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.authors {
		if existing.Email == a.Email {
			return author.ErrEmailAlreadyInUse
		}
	}
	m.authors[a.ID] = a
	return nil
}

func (m *memAuthors) GetAuthorByID(_ netcontext.Context, id primitive.ObjectID) (entity.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.authors[id]
	if !ok {
		return entity.Author{}, author.ErrAuthorNotFound
	}
	return a, nil
}

func (m *memAuthors) GetAuthorByEmail(_ netcontext.Context, email string) (entity.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.authors {
		if a.Email == email {
			return a, nil
		}
	}
	return entity.Author{}, author.ErrAuthorNotFound
}

func (m *memAuthors) GetAllAuthors(_ netcontext.Context) ([]entity.Author, error) {
	return nil, nil
}

func (m *memAuthors) ReplaceAuthor(_ netcontext.Context, a entity.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.authors[a.ID]; !ok {
		return author.ErrAuthorNotFound
	}
	m.authors[a.ID] = a
	return nil
}

func (m *memAuthors) DeleteAuthor(_ netcontext.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.authors, id)
	return nil
}

type memAuthorRepo struct {
	authors *memAuthors
}

func (r *memAuthorRepo) NewClient() (authorRepository.Client, error) {
	return authorRepository.Client{Authors: r.authors}, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]entity.Session)}
}

func (m *memSessions) SetSession(_ context.Context, session entity.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *memSessions) GetSession(_ context.Context, sessionID string) (entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return entity.Session{}, redis.ErrSessionNotFound
	}
	return session, nil
}

func (m *memSessions) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func newTestService(t *testing.T) (IAuthService, *memAuthors, *memSessions) {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_TOKEN_SECRET", "refresh-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := newMemAuthors()
	sessions := newMemSessions()

	svc := New(logger, &memAuthorRepo{authors: store}, sessions, nil, bcrypt.NewWithCost(4), utils.New())
	return svc, store, sessions
}

func seedAuthor(t *testing.T, store *memAuthors, password string) entity.Author {
	t.Helper()

	hashed, err := bcrypt.NewWithCost(4).HashPassword(password)
	assert.NoError(t, err)

	now := time.Now()
	a := entity.Author{
		ID:        primitive.NewObjectID(),
		FirstName: "Jane",
		LastName:  "Roe",
		Email:     "jane@example.com",
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	assert.NoError(t, store.CreateAuthor(context.Background(), a))

	return a
}

func TestLogin(t *testing.T) {
	t.Run("issues token pair and stores session", func(t *testing.T) {
		svc, store, sessions := newTestService(t)
		a := seedAuthor(t, store, "super-secret")

		res, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "super-secret",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Greater(t, res.ExpiresInMinutes, 0.0)

		assert.Len(t, sessions.sessions, 1)
		for _, session := range sessions.sessions {
			assert.Equal(t, a.ID.Hex(), session.AuthorID)
			assert.Equal(t, res.RefreshToken, session.RefreshToken)
			assert.Equal(t, entity.AuthProviderPassword, session.AuthProvider)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		seedAuthor(t, store, "super-secret")

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
	})

	t.Run("unknown email is rejected with the same error", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates the session", func(t *testing.T) {
		svc, store, sessions := newTestService(t)
		seedAuthor(t, store, "super-secret")

		login, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "super-secret",
		})
		assert.NoError(t, err)

		refreshed, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
		assert.Len(t, sessions.sessions, 1)

		// The rotated-out token is no longer usable
		_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
			RefreshToken: "not-a-jwt",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})
}

func TestLogout(t *testing.T) {
	svc, store, sessions := newTestService(t)
	seedAuthor(t, store, "super-secret")

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "super-secret",
	})
	assert.NoError(t, err)
	assert.Len(t, sessions.sessions, 1)

	err = svc.Logout(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.NoError(t, err)
	assert.Empty(t, sessions.sessions)

	// A logged-out refresh token cannot mint new sessions
	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestGetProfile(t *testing.T) {
	svc, store, _ := newTestService(t)
	a := seedAuthor(t, store, "super-secret")

	profile, err := svc.GetProfile(context.Background(), entity.AuthorLoginData{
		ID:    a.ID.Hex(),
		Name:  a.FullName(),
		Email: a.Email,
	})
	assert.NoError(t, err)
	assert.Equal(t, a.Email, profile.Email)

	_, err = svc.GetProfile(context.Background(), entity.AuthorLoginData{
		ID: primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
