package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FeedbackID bson.ObjectID `bson:"feedback_id" json:"feedback_id"`
	AuthorName string        `bson:"author_name" json:"author_name"`
	Content    string        `bson:"content" json:"content"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}
