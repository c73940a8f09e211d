package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bookmarks/models"
)

func newUpdateCommand(app *cli) *cobra.Command {
	var (
		title       string
		url         string
		description string
		rating      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a bookmark",
		Long: `Update sends only the flags that were given.

Example:
  bookmarks update 3 --rating 5 --description "daily"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var request models.UpdateBookmarkRequest
			flags := cmd.Flags()
			if flags.Changed("title") {
				request.Title = &title
			}
			if flags.Changed("url") {
				request.URL = &url
			}
			if flags.Changed("description") {
				request.Description = &description
			}
			if flags.Changed("rating") {
				request.Rating = models.RawRating(rating)
			}

			if err = app.adapter.Update(cmd.Context(), id, request); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated bookmark %d\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&url, "url", "", "new URL")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&rating, "rating", "", "new rating from 1 to 5")

	return cmd
}
