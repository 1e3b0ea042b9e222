package authService

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"blogapp-be/internal/api/auth"
	"blogapp-be/internal/api/author"
	"blogapp-be/internal/entity"
	contextPkg "blogapp-be/pkg/context"
	jwtPkg "blogapp-be/pkg/jwt"
	"blogapp-be/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	a, err := repo.Authors.GetAuthorByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt with unknown email")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(a.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueSession(c, requestID, a, entity.AuthProviderPassword)
}

// issueSession signs the token pair and stores the refresh-token session in
// Redis keyed by a fresh session id. The refresh token carries the session id
// so refresh and logout can find it again.
func (s *authService) issueSession(c context.Context, requestID string, a entity.Author, provider entity.AuthProvider) (auth.LoginResponse, error) {
	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session id")
		return auth.LoginResponse{}, err
	}

	authorData := MakeAuthorData(a)

	accessToken, expiredAt, err := jwtPkg.Sign(authorData, jwtPkg.AccessTokenSecretEnv, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	refreshData := map[string]interface{}{
		"sid": sessionID,
		"id":  a.ID.Hex(),
	}
	refreshToken, _, err := jwtPkg.Sign(refreshData, jwtPkg.RefreshTokenSecretEnv, refreshTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign refresh token")
		return auth.LoginResponse{}, err
	}

	now := time.Now()
	session := entity.Session{
		ID:           sessionID,
		AuthorID:     a.ID.Hex(),
		RefreshToken: refreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(refreshTokenTTL),
		AuthProvider: provider,
	}

	if err := s.redisServer.SetSession(c, session, refreshTokenTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store session")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"provider":   provider.String(),
	}).Info("Session created")

	return auth.LoginResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresInMinutes: time.Until(time.Unix(expiredAt, 0)).Minutes(),
	}, nil
}

// verifySession resolves a refresh token to its stored session. The token must
// parse against the refresh secret and match the copy held in Redis, so a
// rotated-out token is rejected even before it expires.
func (s *authService) verifySession(c context.Context, requestID string, refreshToken string) (entity.Session, error) {
	claims, err := jwtPkg.Verify(refreshToken, jwtPkg.RefreshTokenSecretEnv)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Refresh token verification failed")
		return entity.Session{}, auth.ErrInvalidRefreshToken
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return entity.Session{}, auth.ErrInvalidRefreshToken
	}

	session, err := s.redisServer.GetSession(c, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return entity.Session{}, auth.ErrSessionNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load session")
		return entity.Session{}, err
	}

	if session.RefreshToken != refreshToken {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Warn("Refresh token does not match stored session")
		return entity.Session{}, auth.ErrInvalidRefreshToken
	}

	return session, nil
}

func (s *authService) RefreshToken(c context.Context, req auth.RefreshTokenRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	session, err := s.verifySession(c, requestID, req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	a, err := getAuthorByHexID(c, repo, session.AuthorID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	// Rotation: the old session is dropped before a new pair is issued.
	if err := s.redisServer.DeleteSession(c, session.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"error":      err.Error(),
		}).Warn("Failed to delete rotated session")
	}

	return s.issueSession(c, requestID, a, session.AuthProvider)
}

func (s *authService) Logout(c context.Context, req auth.RefreshTokenRequest) error {
	requestID := contextPkg.GetRequestID(c)

	session, err := s.verifySession(c, requestID, req.RefreshToken)
	if err != nil {
		return err
	}

	if err := s.redisServer.DeleteSession(c, session.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"error":      err.Error(),
		}).Error("Failed to delete session")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
	}).Info("Session terminated")

	return nil
}

func (s *authService) GetProfile(c context.Context, authorData entity.AuthorLoginData) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Author{}, err
	}

	return getAuthorByHexID(c, repo, authorData.ID)
}

func (s *authService) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

// LoginWithGoogle upserts the author by email: a first-time Google login
// registers the author with an unusable credential hash.
func (s *authService) LoginWithGoogle(c context.Context, user auth.GoogleUser) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	a, err := repo.Authors.GetAuthorByEmail(c, user.Email)
	if errors.Is(err, author.ErrAuthorNotFound) {
		a, err = s.registerGoogleAuthor(c, repo, user)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to register Google author")
			return auth.LoginResponse{}, err
		}
	} else if err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueSession(c, requestID, a, entity.AuthProviderGoogle)
}
