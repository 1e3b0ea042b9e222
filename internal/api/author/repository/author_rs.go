package authorRepository

import (
	"errors"

	"blogapp-be/internal/api/author"
	"blogapp-be/internal/entity"
	contextPkg "blogapp-be/pkg/context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

func (r *authorsRepository) CreateAuthor(c context.Context, a entity.Author) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := r.collection.InsertOne(c, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return author.ErrEmailAlreadyInUse
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to insert author")
		return err
	}

	return nil
}

func (r *authorsRepository) GetAuthorByID(c context.Context, id primitive.ObjectID) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	var a entity.Author
	err := r.collection.FindOne(c, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Author{}, author.ErrAuthorNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id.Hex(),
			"error":      err.Error(),
		}).Error("Failed to find author")
		return entity.Author{}, err
	}

	return a, nil
}

func (r *authorsRepository) GetAuthorByEmail(c context.Context, email string) (entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	var a entity.Author
	err := r.collection.FindOne(c, bson.M{"email": email}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Author{}, author.ErrAuthorNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to find author by email")
		return entity.Author{}, err
	}

	return a, nil
}

func (r *authorsRepository) GetAllAuthors(c context.Context) ([]entity.Author, error) {
	requestID := contextPkg.GetRequestID(c)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(c, bson.M{}, opts)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to query authors")
		return nil, err
	}
	defer cursor.Close(c)

	authors := make([]entity.Author, 0)
	if err := cursor.All(c, &authors); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to decode authors")
		return nil, err
	}

	return authors, nil
}

func (r *authorsRepository) ReplaceAuthor(c context.Context, a entity.Author) error {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.collection.ReplaceOne(c, bson.M{"_id": a.ID}, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return author.ErrEmailAlreadyInUse
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         a.ID.Hex(),
			"error":      err.Error(),
		}).Error("Failed to replace author")
		return err
	}

	if result.MatchedCount == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

func (r *authorsRepository) DeleteAuthor(c context.Context, id primitive.ObjectID) error {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.collection.DeleteOne(c, bson.M{"_id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id.Hex(),
			"error":      err.Error(),
		}).Error("Failed to delete author")
		return err
	}

	if result.DeletedCount == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}
