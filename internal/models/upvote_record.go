package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UpvoteRecord is a per-user or per-session vote document. The collection and
// its unique indexes exist, but the upvote endpoint adjusts the counter on the
// Feedback document without consulting it, so votes are not deduplicated
// server-side. Clients track "have I voted" locally instead.
type UpvoteRecord struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FeedbackID bson.ObjectID `bson:"feedback_id" json:"feedback_id"`
	UserID     bson.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID  string        `bson:"session_id,omitempty" json:"session_id,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
}
