package main

import (
	"context"
	"fmt"

	"feedbackboard/internal/client"

	"github.com/spf13/cobra"
)

var (
	submitTitle       string
	submitDescription string
	submitCategory    string
	submitAuthor      string
	submitEmail       string
	submitTags        []string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a new feedback item",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(submitTags) > 5 {
			return fmt.Errorf("at most 5 tags allowed, got %d", len(submitTags))
		}

		feedback, err := api.CreateFeedback(context.Background(), client.CreateFeedbackInput{
			Title:       submitTitle,
			Description: submitDescription,
			Category:    submitCategory,
			AuthorName:  submitAuthor,
			AuthorEmail: submitEmail,
			Tags:        submitTags,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created %s (%s, %s)\n", feedback.ID.Hex(), feedback.Category, feedback.Status)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitTitle, "title", "", "Feedback title (required)")
	submitCmd.Flags().StringVar(&submitDescription, "description", "", "Feedback description (required)")
	submitCmd.Flags().StringVar(&submitCategory, "category", "", "Category (feature|bug|improvement|other; default feature)")
	submitCmd.Flags().StringVar(&submitAuthor, "author", "", "Author name")
	submitCmd.Flags().StringVar(&submitEmail, "email", "", "Author email")
	submitCmd.Flags().StringSliceVar(&submitTags, "tags", nil, "Comma-separated tags (max 5)")
	submitCmd.MarkFlagRequired("title")
	submitCmd.MarkFlagRequired("description")
}
