package authService

import (
	"strings"
	"time"

	"blogapp-be/internal/api/auth"
	"blogapp-be/internal/api/author"
	authorRepository "blogapp-be/internal/api/author/repository"
	"blogapp-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

func getAuthorByHexID(c context.Context, repo authorRepository.Client, id string) (entity.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.Author{}, author.ErrAuthorNotFound
	}

	return repo.Authors.GetAuthorByID(c, oid)
}

// registerGoogleAuthor creates the author record for a first Google login.
// Name parts come from the Google profile; when only a display name is
// present it is split on the first space.
func (s *authService) registerGoogleAuthor(c context.Context, repo authorRepository.Client, user auth.GoogleUser) (entity.Author, error) {
	firstName := user.GivenName
	lastName := user.LastName
	if firstName == "" {
		firstName, lastName = splitDisplayName(user.Name)
	}
	if firstName == "" {
		firstName = user.Email
	}

	// Google accounts have no local password. A random hash keeps the
	// password login path closed for them.
	placeholder, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Author{}, err
	}
	hashed, err := s.bcryptUtils.HashPassword(placeholder)
	if err != nil {
		return entity.Author{}, err
	}

	now := time.Now()
	a := entity.Author{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     user.Email,
		Password:  hashed,
		Avatar:    user.Picture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Authors.CreateAuthor(c, a); err != nil {
		return entity.Author{}, err
	}

	return a, nil
}

func splitDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}

	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
