package author

import (
	"time"

	"blogapp-be/internal/entity"
)

type CreateAuthorRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=128"`
	LastName  string `json:"lastName" validate:"required,min=1,max=128"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=64"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

type UpdateAuthorRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,min=1,max=128"`
	LastName  string `json:"lastName" validate:"omitempty,min=1,max=128"`
	Email     string `json:"email" validate:"omitempty,email"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

// AuthorResponse never carries the credential hash.
type AuthorResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAuthorResponse(a entity.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID.Hex(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Avatar:    a.Avatar,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAuthorListResponse(authors []entity.Author) []AuthorResponse {
	res := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		res = append(res, NewAuthorResponse(a))
	}
	return res
}
