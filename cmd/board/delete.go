package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <feedback-id>",
	Short: "Delete a feedback item and all of its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.DeleteFeedback(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Feedback and its comments deleted.")
		return nil
	},
}
