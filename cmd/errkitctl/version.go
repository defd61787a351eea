package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"errkit/internal/app"
)

func newVersionCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the errkitctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": app.Version,
					"build":   app.Build,
				})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "errkitctl %s (%s)\n", app.Version, app.Build)
			return err
		},
	}
}
