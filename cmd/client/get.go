package main

import (
	"github.com/spf13/cobra"
)

func newGetCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			bookmark, err := app.adapter.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), app.output, bookmark)
		},
	}
}
