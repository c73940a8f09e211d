package main

import (
	"github.com/spf13/cobra"
)

func newListCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all bookmarks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bookmarks, err := app.adapter.List(cmd.Context())
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), app.output, bookmarks)
		},
	}
}
