package repository

import (
	"context"
	"time"

	"feedbackboard/internal/database"
	"feedbackboard/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UpvoteRepo manages the per-user/per-session vote records. The counter
// endpoint does not read or write this collection; see models.UpvoteRecord.
type UpvoteRepo struct {
	collection *mongo.Collection
}

func NewUpvoteRepo() *UpvoteRepo {
	return &UpvoteRepo{
		collection: database.GetCollection("upvotes"),
	}
}

func (r *UpvoteRepo) Create(ctx context.Context, record *models.UpvoteRecord) error {
	record.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	record.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// EnsureIndexes creates the unique sparse indexes that would back one-vote-per
// -identity enforcement if the counter endpoint ever consulted this collection
func (r *UpvoteRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "feedback_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "feedback_id", Value: 1}, {Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
