package authorRepository

import (
	"blogapp-be/internal/entity"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/net/context"
)

const authorCollection = "authors"

func New(db *mongo.Database, log *logrus.Logger) Repository {
	return &repository{
		db:  db,
		log: log,
	}
}

type repository struct {
	db  *mongo.Database
	log *logrus.Logger
}

type Repository interface {
	NewClient() (Client, error)
}

func (r *repository) NewClient() (Client, error) {
	return Client{
		Authors: &authorsRepository{
			collection: r.db.Collection(authorCollection),
			log:        r.log,
		},
	}, nil
}

type Client struct {
	Authors interface {
		CreateAuthor(ctx context.Context, author entity.Author) error
		GetAuthorByID(ctx context.Context, id primitive.ObjectID) (entity.Author, error)
		GetAuthorByEmail(ctx context.Context, email string) (entity.Author, error)
		GetAllAuthors(ctx context.Context) ([]entity.Author, error)
		ReplaceAuthor(ctx context.Context, author entity.Author) error
		DeleteAuthor(ctx context.Context, id primitive.ObjectID) error
	}
}

type authorsRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}
