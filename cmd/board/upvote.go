package main

import (
	"context"
	"fmt"

	"feedbackboard/internal/client"

	"github.com/spf13/cobra"
)

var upvoteCmd = &cobra.Command{
	Use:   "upvote <feedback-id>",
	Short: "Toggle your upvote on a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		feedbackID := args[0]

		feedback, err := api.GetFeedback(ctx, feedbackID)
		if err != nil {
			return err
		}

		toggle := client.NewUpvoteToggle(api, feedbackID, feedback.Upvotes, markers, nil)
		wasUpvoted := toggle.HasUpvoted()

		if err := toggle.Toggle(ctx); err != nil {
			return err
		}

		if wasUpvoted {
			fmt.Printf("Upvote removed. %q now has %d upvotes.\n", feedback.Title, toggle.Upvotes())
		} else {
			fmt.Printf("Upvoted! %q now has %d upvotes.\n", feedback.Title, toggle.Upvotes())
		}
		return nil
	},
}
