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

type CommentRepo struct {
	collection *mongo.Collection
}

func NewCommentRepo() *CommentRepo {
	return &CommentRepo{
		collection: database.GetCollection("comments"),
	}
}

func (r *CommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *CommentRepo) ListByFeedback(ctx context.Context, feedbackID bson.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"feedback_id": feedbackID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByFeedback removes every comment referencing the feedback id.
// Called by the feedback delete handler to cascade; there is no
// database-enforced foreign key.
func (r *CommentRepo) DeleteByFeedback(ctx context.Context, feedbackID bson.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"feedback_id": feedbackID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureIndexes creates the index backing per-feedback comment listing
func (r *CommentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "feedback_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
