package client

import (
	"context"
	"log"
)

// UpvoteToggle tracks one feedback item's upvote state for this client.
// "Did I vote" lives in the local marker store; "how many total votes" is the
// server's counter. State only changes after the server confirms, so a failed
// request needs no rollback.
type UpvoteToggle struct {
	api        *Client
	feedbackID string
	markers    MarkerStore
	onChange   func(feedbackID string, newCount int)

	upvotes    int
	hasUpvoted bool
	isLoading  bool
}

// NewUpvoteToggle seeds the counter from the parent snapshot and the voted
// flag from the marker store. onChange may be nil.
func NewUpvoteToggle(api *Client, feedbackID string, initialUpvotes int, markers MarkerStore, onChange func(feedbackID string, newCount int)) *UpvoteToggle {
	return &UpvoteToggle{
		api:        api,
		feedbackID: feedbackID,
		markers:    markers,
		onChange:   onChange,
		upvotes:    initialUpvotes,
		hasUpvoted: markers.Has(feedbackID),
	}
}

func (t *UpvoteToggle) Upvotes() int { return t.upvotes }

func (t *UpvoteToggle) HasUpvoted() bool { return t.hasUpvoted }

// Toggle casts or retracts this client's vote. A toggle already in flight
// makes it a silent no-op, so rapid repeated calls cannot double-submit.
func (t *UpvoteToggle) Toggle(ctx context.Context) error {
	if t.isLoading {
		return nil
	}
	t.isLoading = true
	defer func() { t.isLoading = false }()

	if t.hasUpvoted {
		if _, err := t.api.Upvote(ctx, t.feedbackID, "decrement"); err != nil {
			log.Printf("Upvote failed: %v", err)
			return err
		}
		t.upvotes--
		if err := t.markers.Clear(t.feedbackID); err != nil {
			log.Printf("Failed to clear upvote marker: %v", err)
		}
		t.hasUpvoted = false
	} else {
		if _, err := t.api.Upvote(ctx, t.feedbackID, "increment"); err != nil {
			log.Printf("Upvote failed: %v", err)
			return err
		}
		t.upvotes++
		if err := t.markers.Set(t.feedbackID); err != nil {
			log.Printf("Failed to set upvote marker: %v", err)
		}
		t.hasUpvoted = true
	}

	if t.onChange != nil {
		t.onChange(t.feedbackID, t.upvotes)
	}
	return nil
}
