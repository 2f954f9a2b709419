// Package client implements the consumer side of the feedback board: an HTTP
// API client plus the list, upvote and comment view-models used by the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"feedbackboard/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type CreateFeedbackInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	AuthorName  string   `json:"author_name,omitempty"`
	AuthorEmail string   `json:"author_email,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ListFeedback fetches the board listing. No pagination parameters are sent;
// the server applies its own defaults.
func (c *Client) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var items []models.Feedback
	if err := c.do(ctx, http.MethodGet, "/feedback", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateFeedback(ctx context.Context, input CreateFeedbackInput) (*models.Feedback, error) {
	var resp struct {
		Feedback models.Feedback `json:"feedback"`
	}
	if err := c.do(ctx, http.MethodPost, "/feedback", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Feedback, nil
}

func (c *Client) GetFeedback(ctx context.Context, id string) (*models.Feedback, error) {
	var resp struct {
		Feedback models.Feedback `json:"feedback"`
	}
	if err := c.do(ctx, http.MethodGet, "/feedback/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Feedback, nil
}

func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/feedback/"+id, nil, nil)
}

// Upvote sends an increment or decrement action and returns the
// server-confirmed counter.
func (c *Client) Upvote(ctx context.Context, id, action string) (int, error) {
	body := map[string]string{"action": action}
	var resp struct {
		Upvotes int `json:"upvotes"`
	}
	if err := c.do(ctx, http.MethodPatch, "/feedback/"+id+"/upvote", body, &resp); err != nil {
		return 0, err
	}
	return resp.Upvotes, nil
}

func (c *Client) ListComments(ctx context.Context, feedbackID string) ([]models.Comment, error) {
	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := c.do(ctx, http.MethodGet, "/feedback/"+feedbackID+"/comments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

func (c *Client) CreateComment(ctx context.Context, feedbackID, authorName, content string) (*models.Comment, error) {
	body := map[string]string{"author_name": authorName, "content": content}
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, "/feedback/"+feedbackID+"/comments", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
