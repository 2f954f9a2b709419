package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feedbackboard/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// commentServer fakes the two comment endpoints with an in-memory list,
// newest first.
func commentServer(t *testing.T) (*httptest.Server, *[]models.Comment, *bool) {
	t.Helper()
	stored := []models.Comment{}
	failCreate := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			if failCreate {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "store down"})
				return
			}
			var req struct {
				AuthorName string `json:"author_name"`
				Content    string `json:"content"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("Bad request body: %v", err)
			}
			comment := models.Comment{
				ID:         bson.NewObjectID(),
				AuthorName: req.AuthorName,
				Content:    req.Content,
				CreatedAt:  time.Now(),
			}
			stored = append([]models.Comment{comment}, stored...)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(comment)
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{"comments": stored})
		}
	}))
	t.Cleanup(server.Close)
	return server, &stored, &failCreate
}

func TestSubmitValidatesLocally(t *testing.T) {
	server, stored, _ := commentServer(t)
	view := NewCommentsView(New(server.URL), "abc123")

	tests := []struct {
		name    string
		author  string
		content string
	}{
		{"both blank", "", ""},
		{"blank author", "", "hello"},
		{"blank content", "Ada", ""},
		{"whitespace only", "  ", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view.AuthorName = tt.author
			view.Draft = tt.content
			if err := view.Submit(t.Context()); err != ErrBlankComment {
				t.Errorf("Expected ErrBlankComment, got %v", err)
			}
		})
	}
	if len(*stored) != 0 {
		t.Errorf("Validation failure still reached the server: %d comments stored", len(*stored))
	}
	if view.Count() != 0 {
		t.Errorf("Validation failure still inserted optimistically: %d entries", view.Count())
	}
}

func TestSubmitOptimisticThenReconciled(t *testing.T) {
	server, _, _ := commentServer(t)
	view := NewCommentsView(New(server.URL), "abc123")

	view.AuthorName = "Ada"
	view.Draft = "Great idea"
	if err := view.Submit(t.Context()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// Draft content cleared, author kept for the next comment
	if view.Draft != "" {
		t.Errorf("Draft not cleared: %q", view.Draft)
	}
	if view.AuthorName != "Ada" {
		t.Errorf("Author name should survive submit: %q", view.AuthorName)
	}

	// The refetch replaced the optimistic entry with the server document
	if view.Count() != 1 {
		t.Fatalf("Expected 1 comment, got %d", view.Count())
	}
	entry := view.Visible()[0]
	if strings.HasPrefix(entry.ID, "temp-") {
		t.Errorf("Optimistic entry not replaced after confirmation: id %q", entry.ID)
	}
	if entry.Content != "Great idea" {
		t.Errorf("Expected confirmed content, got %q", entry.Content)
	}
}

func TestSubmitFailureKeepsOptimisticEntry(t *testing.T) {
	server, _, failCreate := commentServer(t)
	view := NewCommentsView(New(server.URL), "abc123")
	*failCreate = true

	view.AuthorName = "Ada"
	view.Draft = "Lost in transit"
	if err := view.Submit(t.Context()); err == nil {
		t.Fatal("Expected submit to report the failure")
	}

	// No rollback: the optimistic entry stays visible with its temp id
	if view.Count() != 1 {
		t.Fatalf("Expected the optimistic entry to remain, got %d entries", view.Count())
	}
	entry := view.Visible()[0]
	if !strings.HasPrefix(entry.ID, "temp-") {
		t.Errorf("Expected a temp id, got %q", entry.ID)
	}
	if view.Draft != "" {
		t.Error("Draft should clear regardless of network outcome")
	}

	// The next successful refresh reconciles with the server (entry gone)
	*failCreate = false
	if err := view.Refresh(t.Context()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if view.Count() != 0 {
		t.Errorf("Refresh kept the failed optimistic entry: %d left", view.Count())
	}
}

func TestVisibleWindowToggle(t *testing.T) {
	server, stored, _ := commentServer(t)
	for i := 0; i < 5; i++ {
		*stored = append(*stored, models.Comment{
			ID:         bson.NewObjectID(),
			AuthorName: "Ada",
			Content:    "c",
			CreatedAt:  time.Now(),
		})
	}

	view := NewCommentsView(New(server.URL), "abc123")
	if err := view.Refresh(t.Context()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if len(view.Visible()) != 3 {
		t.Fatalf("Expected the first 3 comments, got %d", len(view.Visible()))
	}
	if view.Expanded() {
		t.Error("View should start collapsed")
	}

	view.ToggleExpand()
	if len(view.Visible()) != 5 {
		t.Errorf("Expected all 5 comments when expanded, got %d", len(view.Visible()))
	}

	view.ToggleExpand()
	if len(view.Visible()) != 3 {
		t.Errorf("Expected collapse back to 3, got %d", len(view.Visible()))
	}
}
