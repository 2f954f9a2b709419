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

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedbacks"),
	}
}

// ListFilter narrows and pages the feedback listing. Zero-value fields are
// ignored; results are always newest first.
type ListFilter struct {
	Category string
	Status   string
	Limit    int64
	Skip     int64
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	now := time.Now()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now
	if feedback.Tags == nil {
		feedback.Tags = []string{}
	}
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *FeedbackRepo) List(ctx context.Context, filter ListFilter) ([]models.Feedback, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(filter.Skip)
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FeedbackRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

// Delete removes the feedback document. It reports false when no document
// matched; removing associated comments is the caller's job.
func (r *FeedbackRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// AdjustUpvotes applies delta (+1 or -1) to the upvote counter as a single
// atomic fetch-and-add and returns the new count. This is the only write path
// for the upvotes field. Reports found=false when the id does not resolve.
func (r *FeedbackRepo) AdjustUpvotes(ctx context.Context, id bson.ObjectID, delta int) (int, bool, error) {
	update := bson.M{
		"$inc": bson.M{"upvotes": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var feedback models.Feedback
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, false, nil
		}
		return 0, false, err
	}
	return feedback.Upvotes, true, nil
}

// EnsureIndexes creates the secondary indexes used by filtered listing
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
