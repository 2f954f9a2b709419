package main

import (
	"fmt"
	"os"
	"path/filepath"

	"feedbackboard/internal/client"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL string

	api     *client.Client
	markers client.MarkerStore
)

func defaultAPIURL() string {
	if s := os.Getenv("BOARD_API_URL"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

func markerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feedbackboard-upvotes.json"
	}
	return filepath.Join(home, ".feedbackboard", "upvotes.json")
}

var rootCmd = &cobra.Command{
	Use:   "board <command>",
	Short: "CLI client for the feedback board",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		api = client.New(apiURL)

		store, err := client.NewFileMarkerStore(markerPath())
		if err != nil {
			return fmt.Errorf("failed to open upvote markers: %w", err)
		}
		markers = store
		return nil
	},
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "Feedback board API base URL")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(upvoteCmd)
	rootCmd.AddCommand(commentsCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
