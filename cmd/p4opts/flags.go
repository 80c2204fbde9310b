package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/danbrakeley/p4opts/internal/options"
	"github.com/spf13/cobra"
)

func newFlagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flags [command]",
		Short: "List the commands, or the flags of one command",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				_, err := fmt.Fprintln(out, strings.Join(options.CommandNames(), "\n"))
				return err
			}

			c, ok := options.Lookup(args[0])
			if !ok {
				return fmt.Errorf(`unknown command "%s" (see "p4opts flags")`, args[0])
			}
			if len(c.Flags) == 0 {
				_, err := fmt.Fprintf(out, "%s has no flags\n", c.Name)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FLAG\tSWITCH\tGROUP")
			for _, f := range c.Flags {
				sw := f.Switch
				if len(sw) == 0 {
					sw = "-"
				}
				group := ""
				if f.Group != 0 {
					group = fmt.Sprintf("%d", f.Group)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, sw, group)
			}
			return tw.Flush()
		},
	}
}
