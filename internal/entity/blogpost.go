package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Category    string             `bson:"category"`
	Cover       string             `bson:"cover,omitempty"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	AuthorEmail string             `bson:"author_email"`
	ReadTime    ReadTime           `bson:"read_time"`
	Comments    []Comment          `bson:"comments"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type ReadTime struct {
	Value int    `bson:"value"`
	Unit  string `bson:"unit"`
}

// Comment lives only inside its parent BlogPost document. IDs are assigned
// on append and unique within the post, order is insertion order.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

// FindComment returns the index of the comment with the given id, or -1.
func (p *BlogPost) FindComment(id primitive.ObjectID) int {
	for i, c := range p.Comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}
