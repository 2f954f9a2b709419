package client

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"feedbackboard/internal/models"

	"github.com/google/uuid"
)

// ErrBlankComment is returned by Submit when either field is empty after
// trimming. No network call is made in that case.
var ErrBlankComment = errors.New("author name and content are required")

const defaultVisibleComments = 3

// CommentEntry is a comment as the view displays it. Optimistic entries carry
// a temp- id and client timestamp until a refetch replaces them with the
// server-assigned document.
type CommentEntry struct {
	ID         string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

func entryFromComment(c models.Comment) CommentEntry {
	return CommentEntry{
		ID:         c.ID.Hex(),
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

// CommentsView shows the comments under one feedback item and submits new
// ones optimistically.
type CommentsView struct {
	api        *Client
	feedbackID string

	comments     []CommentEntry
	visibleCount int
	loading      bool

	// Draft inputs for the next Submit.
	AuthorName string
	Draft      string
}

func NewCommentsView(api *Client, feedbackID string) *CommentsView {
	return &CommentsView{
		api:          api,
		feedbackID:   feedbackID,
		visibleCount: defaultVisibleComments,
	}
}

// Refresh replaces the list with the server's, newest first. Optimistic
// entries are dropped in favor of their authoritative counterparts.
func (v *CommentsView) Refresh(ctx context.Context) error {
	v.loading = true
	defer func() { v.loading = false }()

	comments, err := v.api.ListComments(ctx, v.feedbackID)
	if err != nil {
		log.Printf("Failed to load comments: %v", err)
		return err
	}

	entries := make([]CommentEntry, 0, len(comments))
	for _, c := range comments {
		entries = append(entries, entryFromComment(c))
	}
	v.comments = entries
	return nil
}

// Submit posts the current draft. The comment is prepended locally before the
// server confirms, and the draft content clears immediately either way. On
// success the list is refetched so the optimistic entry is replaced; on
// failure it stays visible until the next successful refresh.
func (v *CommentsView) Submit(ctx context.Context) error {
	authorName := strings.TrimSpace(v.AuthorName)
	content := strings.TrimSpace(v.Draft)
	if authorName == "" || content == "" {
		return ErrBlankComment
	}

	optimistic := CommentEntry{
		ID:         "temp-" + uuid.NewString(),
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	v.comments = append([]CommentEntry{optimistic}, v.comments...)
	v.Draft = ""

	if _, err := v.api.CreateComment(ctx, v.feedbackID, authorName, content); err != nil {
		log.Printf("Failed to post comment: %v", err)
		return err
	}

	return v.Refresh(ctx)
}

func (v *CommentsView) Loading() bool { return v.loading }

func (v *CommentsView) Count() int { return len(v.comments) }

// Visible returns the currently displayed window: the first 3 comments, or
// all of them when expanded.
func (v *CommentsView) Visible() []CommentEntry {
	if len(v.comments) <= v.visibleCount {
		return v.comments
	}
	return v.comments[:v.visibleCount]
}

func (v *CommentsView) Expanded() bool {
	return v.visibleCount != defaultVisibleComments
}

// ToggleExpand switches between the 3-comment window and the full list.
func (v *CommentsView) ToggleExpand() {
	if v.Expanded() {
		v.visibleCount = defaultVisibleComments
	} else {
		v.visibleCount = len(v.comments)
	}
}
