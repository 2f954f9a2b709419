package handlers

import (
	"context"

	"feedbackboard/internal/models"
	"feedbackboard/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackStore is the slice of repository.FeedbackRepo the handlers need.
// Absent documents are reported as (nil, nil) / found=false, not as errors.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context, filter repository.ListFilter) ([]models.Feedback, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Feedback, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	AdjustUpvotes(ctx context.Context, id bson.ObjectID, delta int) (int, bool, error)
}

// CommentStore is the slice of repository.CommentRepo the handlers need.
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByFeedback(ctx context.Context, feedbackID bson.ObjectID) ([]models.Comment, error)
	DeleteByFeedback(ctx context.Context, feedbackID bson.ObjectID) (int64, error)
}
