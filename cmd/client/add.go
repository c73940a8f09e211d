package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bookmarks/models"
)

func newAddCommand(app *cli) *cobra.Command {
	var (
		title       string
		url         string
		description string
		rating      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a bookmark",
		Long: `Add creates a bookmark. The server validates the fields: title and url are
required, url must be absolute http(s) and rating must be an integer 1..5.

Example:
  bookmarks add --title Google --url https://www.google.com --rating 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, location, err := app.adapter.Create(cmd.Context(), models.CreateBookmarkRequest{
				Title:       title,
				URL:         url,
				Description: description,
				Rating:      models.RawRating(rating),
			})
			if err != nil {
				return err
			}

			if app.output == outputTable || app.output == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created bookmark %d at %s\n", created.ID, location)
				return err
			}
			return write(cmd.OutOrStdout(), app.output, created)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "bookmark title")
	cmd.Flags().StringVar(&url, "url", "", "absolute http(s) URL")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&rating, "rating", "", "rating from 1 to 5")

	return cmd
}
