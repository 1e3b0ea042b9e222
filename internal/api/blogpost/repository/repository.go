package blogpostRepository

import (
	"blogapp-be/internal/entity"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/net/context"
)

const blogPostCollection = "blog_posts"

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
		BlogPosts: &blogPostsRepository{
			collection: r.db.Collection(blogPostCollection),
			log:        r.log,
		},
	}, nil
}

type Client struct {
	BlogPosts interface {
		CreateBlogPost(ctx context.Context, post entity.BlogPost) error
		GetBlogPostByID(ctx context.Context, id primitive.ObjectID) (entity.BlogPost, error)
		GetAllBlogPosts(ctx context.Context, titleFilter string) ([]entity.BlogPost, error)
		ReplaceBlogPost(ctx context.Context, post entity.BlogPost) error
		DeleteBlogPost(ctx context.Context, id primitive.ObjectID) error
	}
}

type blogPostsRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}
