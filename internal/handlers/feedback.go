package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"feedbackboard/internal/models"
	"feedbackboard/internal/notify"
	"feedbackboard/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultListLimit = 20

type FeedbackHandler struct {
	feedbackStore FeedbackStore
	commentStore  CommentStore
	notifier      notify.Notifier
}

func NewFeedbackHandler(feedbackStore FeedbackStore, commentStore CommentStore, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackStore: feedbackStore,
		commentStore:  commentStore,
		notifier:      notifier,
	}
}

type CreateFeedbackRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
	Tags        []string `json:"tags"`
}

// --- POST /feedback ---

func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title and description are required"})
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryFeature
	}
	if !models.ValidCategory(category) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category"})
		return
	}

	feedback := &models.Feedback{
		Title:       title,
		Description: description,
		Category:    category,
		Status:      models.StatusOpen,
		Upvotes:     0,
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.TrimSpace(req.AuthorEmail),
		Tags:        req.Tags,
	}

	if err := h.feedbackStore.Create(r.Context(), feedback); err != nil {
		log.Printf("Error creating feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create feedback"})
		return
	}

	// Fire the board-owner notification in a background goroutine (non-blocking)
	go func() {
		subject, message := formatNewFeedback(feedback)
		if err := h.notifier.Publish(context.Background(), subject, message); err != nil {
			log.Printf("Error publishing notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"feedback": feedback,
	})
}

// --- GET /feedback ---

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	filter := repository.ListFilter{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Limit:    defaultListLimit,
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if skip, err := strconv.ParseInt(raw, 10, 64); err == nil && skip > 0 {
			filter.Skip = skip
		}
	}

	items, err := h.feedbackStore.List(r.Context(), filter)
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list feedback"})
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// --- GET /feedback/{id} ---

func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id cannot match any document
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	feedback, err := h.feedbackStore.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error finding feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if feedback == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"feedback": feedback,
	})
}

// --- DELETE /feedback/{id} ---

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	deleted, err := h.feedbackStore.Delete(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete feedback"})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	// Cascade: comments reference feedback by id with no foreign key
	if _, err := h.commentStore.DeleteByFeedback(r.Context(), id); err != nil {
		log.Printf("Error cascading comment delete: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete comments"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "feedback and its comments deleted successfully",
	})
}

func formatNewFeedback(feedback *models.Feedback) (subject, message string) {
	subject = "📝 New feedback: " + feedback.Title
	author := feedback.AuthorName
	if author == "" {
		author = "anonymous"
	}
	message = "Category: " + feedback.Category + "\n" +
		"From: " + author + "\n\n" +
		feedback.Description
	return subject, message
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
