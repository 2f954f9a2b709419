package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"feedbackboard/internal/client"

	"github.com/spf13/cobra"
)

var (
	listSearch   string
	listCategory string
	listStatus   string
	listSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback items with optional filtering and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		view := client.NewListView(api)
		if err := view.Load(ctx); err != nil {
			return err
		}

		items, filtered, total := view.View(client.FilterSpec{
			Search:   listSearch,
			Category: listCategory,
			Status:   listStatus,
			SortBy:   listSort,
		})

		if len(items) == 0 {
			if total == 0 {
				fmt.Println("No feedback yet.")
			} else {
				fmt.Println("No feedback matches your filters.")
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tVOTES\tCATEGORY\tSTATUS\tTITLE\tTAGS")
		for _, item := range items {
			voted := " "
			if markers.Has(item.ID.Hex()) {
				voted = "*"
			}
			fmt.Fprintf(w, "%s\t%d%s\t%s\t%s\t%s\t%s\n",
				item.ID.Hex(), item.Upvotes, voted, item.Category, item.Status,
				item.Title, strings.Join(item.Tags, ","))
		}
		w.Flush()

		fmt.Printf("\nShowing %d of %d items\n", filtered, total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive substring match on title, description, tags and author")
	listCmd.Flags().StringVar(&listCategory, "category", "all", "Filter by category (feature|bug|improvement|other|all)")
	listCmd.Flags().StringVar(&listStatus, "status", "all", "Filter by status (open|in-progress|completed|rejected|all)")
	listCmd.Flags().StringVar(&listSort, "sort", "newest", "Sort order (newest|oldest|most-upvoted|least-upvoted)")
}
