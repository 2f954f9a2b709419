package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"feedbackboard/internal/models"
	"feedbackboard/internal/notify"
	"feedbackboard/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var errStoreDown = errors.New("store down")

// memFeedbackStore is an in-memory FeedbackStore mirroring the repository's
// behavior: timestamps and ids assigned on create, newest-first listing,
// absent documents reported without error.
type memFeedbackStore struct {
	mu    sync.Mutex
	items []*models.Feedback
	fail  bool
}

func (s *memFeedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	now := time.Now()
	feedback.ID = bson.NewObjectID()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now
	if feedback.Tags == nil {
		feedback.Tags = []string{}
	}
	// Prepend so iteration order is newest first
	s.items = append([]*models.Feedback{feedback}, s.items...)
	return nil
}

func (s *memFeedbackStore) List(ctx context.Context, filter repository.ListFilter) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	matched := []models.Feedback{}
	for _, item := range s.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		matched = append(matched, *item)
	}
	if filter.Skip > 0 {
		if filter.Skip >= int64(len(matched)) {
			return []models.Feedback{}, nil
		}
		matched = matched[filter.Skip:]
	}
	if filter.Limit > 0 && int64(len(matched)) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *memFeedbackStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	for _, item := range s.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memFeedbackStore) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return false, errStoreDown
	}
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memFeedbackStore) AdjustUpvotes(ctx context.Context, id bson.ObjectID, delta int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return 0, false, errStoreDown
	}
	for _, item := range s.items {
		if item.ID == id {
			item.Upvotes += delta
			item.UpdatedAt = time.Now()
			return item.Upvotes, true, nil
		}
	}
	return 0, false, nil
}

type memCommentStore struct {
	mu       sync.Mutex
	comments []*models.Comment
	fail     bool
}

func (s *memCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	now := time.Now()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	s.comments = append([]*models.Comment{comment}, s.comments...)
	return nil
}

func (s *memCommentStore) ListByFeedback(ctx context.Context, feedbackID bson.ObjectID) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	matched := []models.Comment{}
	for _, comment := range s.comments {
		if comment.FeedbackID == feedbackID {
			matched = append(matched, *comment)
		}
	}
	return matched, nil
}

func (s *memCommentStore) DeleteByFeedback(ctx context.Context, feedbackID bson.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return 0, errStoreDown
	}
	kept := s.comments[:0]
	var deleted int64
	for _, comment := range s.comments {
		if comment.FeedbackID == feedbackID {
			deleted++
			continue
		}
		kept = append(kept, comment)
	}
	s.comments = kept
	return deleted, nil
}

func setupRouter(t *testing.T) (http.Handler, *memFeedbackStore, *memCommentStore) {
	t.Helper()
	feedbackStore := &memFeedbackStore{}
	commentStore := &memCommentStore{}
	feedbackHandler := NewFeedbackHandler(feedbackStore, commentStore, notify.NewLogNotifier())
	commentHandler := NewCommentHandler(commentStore)
	return Routes(feedbackHandler, commentHandler), feedbackStore, commentStore
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

func seedFeedback(t *testing.T, store *memFeedbackStore, feedback *models.Feedback) *models.Feedback {
	t.Helper()
	if feedback.Category == "" {
		feedback.Category = models.CategoryFeature
	}
	if feedback.Status == "" {
		feedback.Status = models.StatusOpen
	}
	if err := store.Create(context.Background(), feedback); err != nil {
		t.Fatalf("Failed to seed feedback: %v", err)
	}
	return feedback
}
