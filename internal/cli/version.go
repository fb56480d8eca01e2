package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", opts.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", opts.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", opts.buildInfo.BuildCommit())
		},
	}
}
