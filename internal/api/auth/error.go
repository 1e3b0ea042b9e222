package auth

import "blogapp-be/pkg/response"

var (
	ErrInvalidEmailOrPassword = response.NewError(401, "invalid email or password")
	ErrInvalidRefreshToken    = response.NewError(401, "refresh token invalid or expired")
	ErrSessionNotFound        = response.NewError(401, "session not found or expired")
	ErrGoogleExchangeFailed   = response.NewError(502, "failed to exchange Google authorization code")
)
