package authorService

import (
	"errors"
	"mime/multipart"
	"time"

	"blogapp-be/internal/api/author"
	"blogapp-be/internal/entity"
	contextPkg "blogapp-be/pkg/context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

// parseAuthorID maps malformed ids to ErrAuthorNotFound so an absent and an
// unparseable id are indistinguishable to clients.
func parseAuthorID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, author.ErrAuthorNotFound
	}
	return oid, nil
}

func (s *authorService) Register(c context.Context, req author.CreateAuthorRequest) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Author{}, err
	}

	// Duplicate email is rejected before insert; the unique index on the
	// collection backstops concurrent registrations.
	_, err = repo.Authors.GetAuthorByEmail(c, req.Email)
	if err == nil {
		return entity.Author{}, author.ErrEmailAlreadyInUse
	}
	if !errors.Is(err, author.ErrAuthorNotFound) {
		return entity.Author{}, err
	}

	hashed, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.Author{}, author.ErrCreateAuthor
	}

	now := time.Now()

	a := entity.Author{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		Avatar:    req.Avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Authors.CreateAuthor(c, a); err != nil {
		if errors.Is(err, author.ErrEmailAlreadyInUse) {
			return entity.Author{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create author")
		return entity.Author{}, author.ErrCreateAuthor
	}

	return a, nil
}

func (s *authorService) GetAllAuthors(c context.Context) ([]entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	authors, err := repo.Authors.GetAllAuthors(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list authors")
		return nil, err
	}

	return authors, nil
}

func (s *authorService) GetAuthorByID(c context.Context, id string) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parseAuthorID(id)
	if err != nil {
		return entity.Author{}, err
	}

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Author{}, err
	}

	a, err := repo.Authors.GetAuthorByID(c, oid)
	if err != nil {
		return entity.Author{}, err
	}

	return a, nil
}

func (s *authorService) UpdateAuthor(c context.Context, id string, req author.UpdateAuthorRequest) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parseAuthorID(id)
	if err != nil {
		return entity.Author{}, err
	}

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Author{}, err
	}

	a, err := repo.Authors.GetAuthorByID(c, oid)
	if err != nil {
		return entity.Author{}, err
	}

	if req.Email != "" && req.Email != a.Email {
		existing, err := repo.Authors.GetAuthorByEmail(c, req.Email)
		if err == nil && existing.ID != a.ID {
			return entity.Author{}, author.ErrEmailAlreadyInUse
		}
		if err != nil && !errors.Is(err, author.ErrAuthorNotFound) {
			return entity.Author{}, err
		}
		a.Email = req.Email
	}

	if req.FirstName != "" {
		a.FirstName = req.FirstName
	}
	if req.LastName != "" {
		a.LastName = req.LastName
	}
	if req.Avatar != "" {
		a.Avatar = req.Avatar
	}
	a.UpdatedAt = time.Now()

	if err := repo.Authors.ReplaceAuthor(c, a); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update author")
		if errors.Is(err, author.ErrAuthorNotFound) || errors.Is(err, author.ErrEmailAlreadyInUse) {
			return entity.Author{}, err
		}
		return entity.Author{}, author.ErrUpdateAuthor
	}

	return a, nil
}

func (s *authorService) DeleteAuthor(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	oid, err := parseAuthorID(id)
	if err != nil {
		return err
	}

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	a, err := repo.Authors.GetAuthorByID(c, oid)
	if err != nil {
		return err
	}

	if err := repo.Authors.DeleteAuthor(c, oid); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete author")
		if errors.Is(err, author.ErrAuthorNotFound) {
			return err
		}
		return author.ErrDeleteAuthor
	}

	if a.Avatar != "" {
		if err := s.s3Client.DeleteFile(a.Avatar); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Warn("Failed to delete avatar object")
		}
	}

	return nil
}

func (s *authorService) UpdateAvatar(c context.Context, id string, avatarFile *multipart.FileHeader) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	if avatarFile == nil {
		return entity.Author{}, author.ErrNoFileUploaded
	}

	if err := s.utils.ValidateImageFile(avatarFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid avatar file")
		return entity.Author{}, author.ErrInvalidFileType
	}

	oid, err := parseAuthorID(id)
	if err != nil {
		return entity.Author{}, err
	}

	repo, err := s.authorRepo.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Author{}, err
	}

	a, err := repo.Authors.GetAuthorByID(c, oid)
	if err != nil {
		return entity.Author{}, err
	}

	uploadedURL, err := s.s3Client.UploadFile(avatarFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload avatar")
		return entity.Author{}, author.ErrFailedToUpload
	}

	a.Avatar = uploadedURL
	a.UpdatedAt = time.Now()

	if err := repo.Authors.ReplaceAuthor(c, a); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to persist avatar update")
		if errors.Is(err, author.ErrAuthorNotFound) {
			return entity.Author{}, err
		}
		return entity.Author{}, author.ErrUpdateAuthor
	}

	return a, nil
}
