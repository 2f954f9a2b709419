package client

import (
	"context"
	"log"
	"sort"
	"strings"

	"feedbackboard/internal/models"
)

// Sort orders accepted by FilterSpec.SortBy. Anything unrecognized falls back
// to newest first.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortMostUpvoted  = "most-upvoted"
	SortLeastUpvoted = "least-upvoted"
)

// FilterSpec is the transient filter state of the list view. The zero value
// ("", "", "", "") shows everything newest first.
type FilterSpec struct {
	Search   string
	Category string
	Status   string
	SortBy   string
}

// ListView holds the latest server snapshot of the board and derives the
// displayed subset from it.
type ListView struct {
	api      *Client
	feedback []models.Feedback
	loading  bool
}

func NewListView(api *Client) *ListView {
	return &ListView{api: api}
}

// Load replaces the snapshot with a fresh fetch. On failure the previous
// snapshot stays in place (stale but available).
func (v *ListView) Load(ctx context.Context) error {
	v.loading = true
	defer func() { v.loading = false }()

	items, err := v.api.ListFeedback(ctx)
	if err != nil {
		log.Printf("Failed to load feedback: %v", err)
		return err
	}
	v.feedback = items
	return nil
}

func (v *ListView) Loading() bool { return v.loading }

func (v *ListView) Snapshot() []models.Feedback { return v.feedback }

// View derives the filtered, sorted projection plus the filtered/total counts
// shown alongside it.
func (v *ListView) View(spec FilterSpec) (items []models.Feedback, filtered, total int) {
	items = DeriveView(v.feedback, spec)
	return items, len(items), len(v.feedback)
}

// ApplyUpvoteDelta reconciles an upvote toggle result into the snapshot
// without a reload. Only the counter of the matching item changes.
func (v *ListView) ApplyUpvoteDelta(feedbackID string, newCount int) {
	for i := range v.feedback {
		if v.feedback[i].ID.Hex() == feedbackID {
			v.feedback[i].Upvotes = newCount
			return
		}
	}
}

// DeriveView filters and sorts a snapshot according to spec without mutating it. The
// four filters are conjunctive; sorting is stable, so items with equal keys
// keep their fetch order.
func DeriveView(snapshot []models.Feedback, spec FilterSpec) []models.Feedback {
	filtered := make([]models.Feedback, 0, len(snapshot))

	search := strings.ToLower(spec.Search)
	for _, item := range snapshot {
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if spec.Category != "" && spec.Category != "all" && item.Category != spec.Category {
			continue
		}
		if spec.Status != "" && spec.Status != "all" && item.Status != spec.Status {
			continue
		}
		filtered = append(filtered, item)
	}

	switch spec.SortBy {
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortMostUpvoted:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Upvotes > filtered[j].Upvotes
		})
	case SortLeastUpvoted:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Upvotes < filtered[j].Upvotes
		})
	default: // newest
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

func matchesSearch(item models.Feedback, search string) bool {
	if strings.Contains(strings.ToLower(item.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), search) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	if item.AuthorName != "" && strings.Contains(strings.ToLower(item.AuthorName), search) {
		return true
	}
	return false
}
