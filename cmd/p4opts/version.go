package main

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/buildvar"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			version := buildvar.Version
			if len(version) == 0 {
				version = "unknown (built from source)"
			}
			fmt.Fprintf(out, "p4opts %s\n", version)
			if len(buildvar.BuildTime) > 0 {
				fmt.Fprintf(out, "Built: %s\n", buildvar.BuildTime)
			}
			if len(buildvar.ReleaseURL) > 0 {
				fmt.Fprintf(out, "Release: %s\n", buildvar.ReleaseURL)
			}
			return nil
		},
	}
}
