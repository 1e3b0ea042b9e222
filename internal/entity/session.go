package entity

import "time"

type Session struct {
	ID           string       `json:"id"`
	AuthorID     string       `json:"author_id"`
	RefreshToken string       `json:"refresh_token"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
	AuthProvider AuthProvider `json:"auth_provider"`
}

type AuthProvider uint8

const (
	AuthProviderUnknown  AuthProvider = 0
	AuthProviderPassword AuthProvider = 1
	AuthProviderGoogle   AuthProvider = 2
)

var AuthProviderMap = map[AuthProvider]string{
	AuthProviderPassword: "Password",
	AuthProviderGoogle:   "Google",
}

func (a AuthProvider) String() string {
	return AuthProviderMap[a]
}

func (a AuthProvider) Value() uint8 {
	return uint8(a)
}
