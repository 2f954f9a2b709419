package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"feedbackboard/internal/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentHandler struct {
	commentStore CommentStore
}

func NewCommentHandler(commentStore CommentStore) *CommentHandler {
	return &CommentHandler{
		commentStore: commentStore,
	}
}

type CreateCommentRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// --- POST /feedback/{id}/comments ---

// CreateComment stores a comment under the given feedback id. The parent is
// not checked for existence; orphans are cleaned up by the cascade delete.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	authorName := strings.TrimSpace(req.AuthorName)
	content := strings.TrimSpace(req.Content)
	if authorName == "" || content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "author_name and content are required"})
		return
	}

	comment := &models.Comment{
		FeedbackID: feedbackID,
		AuthorName: authorName,
		Content:    content,
	}

	if err := h.commentStore.Create(r.Context(), comment); err != nil {
		log.Printf("Error creating comment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create comment"})
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// --- GET /feedback/{id}/comments ---

func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}

	comments, err := h.commentStore.ListByFeedback(r.Context(), feedbackID)
	if err != nil {
		log.Printf("Error listing comments: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch comments"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
	})
}
