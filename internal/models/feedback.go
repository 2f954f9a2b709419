package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback categories.
const (
	CategoryFeature     = "feature"
	CategoryBug         = "bug"
	CategoryImprovement = "improvement"
	CategoryOther       = "other"
)

// Feedback statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

type Feedback struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    string        `bson:"category" json:"category"`
	Status      string        `bson:"status" json:"status"`
	Upvotes     int           `bson:"upvotes" json:"upvotes"`
	AuthorName  string        `bson:"author_name,omitempty" json:"author_name,omitempty"`
	AuthorEmail string        `bson:"author_email,omitempty" json:"author_email,omitempty"`
	Tags        []string      `bson:"tags" json:"tags"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryFeature, CategoryBug, CategoryImprovement, CategoryOther:
		return true
	}
	return false
}
