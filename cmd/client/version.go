package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", app.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", app.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", app.buildInfo.BuildCommit())

			serverVersion, err := app.adapter.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			_, err = fmt.Fprintf(out, "Server version: %s\n", serverVersion)
			return err
		},
	}
}
