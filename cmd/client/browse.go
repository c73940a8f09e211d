package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bookmarks/internal/tui"
)

func newBrowseCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse bookmarks interactively",
		Long: `Browse opens a terminal UI over the bookmark list.

Keys: enter copies the URL, i shows details, a adds, e edits, d deletes,
r reloads, v shows build info, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui, err := tui.New(app.adapter, app.buildInfo, app.logger)
			if err != nil {
				return err
			}
			return ui.Browse(cmd.Context())
		},
	}
}
