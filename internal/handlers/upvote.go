package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UpvoteRequest struct {
	Action string `json:"action"`
}

const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// --- PATCH /feedback/{id}/upvote ---

// Upvote adjusts the counter by ±1 in a single atomic update and returns the
// new value. There is no server-side deduplication of votes; clients track
// their own "already voted" marker.
func (h *FeedbackHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	var req UpvoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var delta int
	switch req.Action {
	case ActionIncrement:
		delta = 1
	case ActionDecrement:
		delta = -1
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid action"})
		return
	}

	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	upvotes, found, err := h.feedbackStore.AdjustUpvotes(r.Context(), id, delta)
	if err != nil {
		log.Printf("Error adjusting upvotes: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update upvotes"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"upvotes": upvotes})
}
