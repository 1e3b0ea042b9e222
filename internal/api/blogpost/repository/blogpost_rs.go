package blogpostRepository

import (
	"errors"
	"regexp"

	"blogapp-be/internal/api/blogpost"
	"blogapp-be/internal/entity"
	contextPkg "blogapp-be/pkg/context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

func (r *blogPostsRepository) CreateBlogPost(c context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := r.collection.InsertOne(c, post); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to insert blog post")
		return err
	}

	return nil
}

func (r *blogPostsRepository) GetBlogPostByID(c context.Context, id primitive.ObjectID) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	var post entity.BlogPost
	err := r.collection.FindOne(c, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.BlogPost{}, blogpost.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id.Hex(),
			"error":      err.Error(),
		}).Error("Failed to find blog post")
		return entity.BlogPost{}, err
	}

	return post, nil
}

func (r *blogPostsRepository) GetAllBlogPosts(c context.Context, titleFilter string) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(c)

	filter := bson.M{}
	if titleFilter != "" {
		filter["title"] = bson.M{
			"$regex":   regexp.QuoteMeta(titleFilter),
			"$options": "i",
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(c, filter, opts)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to query blog posts")
		return nil, err
	}
	defer cursor.Close(c)

	posts := make([]entity.BlogPost, 0)
	if err := cursor.All(c, &posts); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to decode blog posts")
		return nil, err
	}

	return posts, nil
}

// ReplaceBlogPost persists the whole document. Nested comment mutations go
// through here, so concurrent writers to the same post are last-write-wins.
func (r *blogPostsRepository) ReplaceBlogPost(c context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.collection.ReplaceOne(c, bson.M{"_id": post.ID}, post)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         post.ID.Hex(),
			"error":      err.Error(),
		}).Error("Failed to replace blog post")
		return err
	}

	if result.MatchedCount == 0 {
		return blogpost.ErrPostNotFound
	}

	return nil
}

func (r *blogPostsRepository) DeleteBlogPost(c context.Context, id primitive.ObjectID) error {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.collection.DeleteOne(c, bson.M{"_id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id.Hex(),
			"error":      err.Error(),
		}).Error("Failed to delete blog post")
		return err
	}

	if result.DeletedCount == 0 {
		return blogpost.ErrPostNotFound
	}

	return nil
}
