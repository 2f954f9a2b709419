package main

import (
	"context"
	"fmt"

	"feedbackboard/internal/client"

	"github.com/spf13/cobra"
)

var (
	commentsAll bool

	commentAuthor  string
	commentMessage string
)

var commentsCmd = &cobra.Command{
	Use:   "comments <feedback-id>",
	Short: "Show comments on a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		view := client.NewCommentsView(api, args[0])
		if err := view.Refresh(ctx); err != nil {
			return err
		}

		if view.Count() == 0 {
			fmt.Println("No comments yet.")
			return nil
		}

		if commentsAll && !view.Expanded() {
			view.ToggleExpand()
		}

		for _, entry := range view.Visible() {
			fmt.Printf("%s (%s)\n  %s\n", entry.AuthorName, entry.CreatedAt.Format("2006-01-02 15:04"), entry.Content)
		}
		if hidden := view.Count() - len(view.Visible()); hidden > 0 {
			fmt.Printf("… and %d more (use --all)\n", hidden)
		}
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <feedback-id>",
	Short: "Add a comment to a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := client.NewCommentsView(api, args[0])
		view.AuthorName = commentAuthor
		view.Draft = commentMessage

		if err := view.Submit(context.Background()); err != nil {
			return err
		}

		fmt.Println("Comment posted.")
		return nil
	},
}

func init() {
	commentsCmd.Flags().BoolVar(&commentsAll, "all", false, "Show all comments instead of the first 3")

	commentCmd.Flags().StringVar(&commentAuthor, "author", "", "Your name (required)")
	commentCmd.Flags().StringVar(&commentMessage, "message", "", "Comment text (required)")
	commentCmd.MarkFlagRequired("author")
	commentCmd.MarkFlagRequired("message")
}
