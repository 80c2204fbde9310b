package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danbrakeley/p4opts/internal/p4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// query loads the config, connects, and hands the client to fn.
func (a *app) query(fn func(server *p4.P4) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	server, disconnect := a.connect(cfg)
	defer disconnect()
	return fn(server)
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the server's version and case handling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(func(server *p4.P4) error {
				info, err := server.Info()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\nCase handling: %s\n", info.ServerVersion, info.CaseHandling)
				return nil
			})
		},
	}
}

func newClientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List the user's clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(func(server *p4.P4) error {
				clients, err := server.ListClients()
				if err != nil {
					return err
				}
				for _, c := range clients {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			})
		},
	}
}

func newClientCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "client",
		Short: "Print the current client spec as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(func(server *p4.P4) error {
				spec, err := server.GetClientSpec()
				if err != nil {
					return err
				}
				b, err := yaml.Marshal(spec)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			})
		},
	}
}

func newOpenedCmd(a *app) *cobra.Command {
	var stream string
	cmd := &cobra.Command{
		Use:   "opened",
		Short: "List files opened in the current client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(func(server *p4.P4) error {
				if err := setStream(server, stream); err != nil {
					return err
				}
				files, err := server.OpenedFiles()
				if err != nil {
					return err
				}
				return writeDepotFiles(cmd.OutOrStdout(), files, false)
			})
		},
	}
	addStreamFlag(cmd, &stream)
	return cmd
}

func newFilesCmd(a *app) *cobra.Command {
	var stream string
	var digest bool
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the files in the current client's stream",
		Long: `List the files in the current client's stream, leaving out deleted files.
With --digest, fstat is used instead of files, and each file's digest and size
are included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(func(server *p4.P4) error {
				if err := setStream(server, stream); err != nil {
					return err
				}
				list := server.DepotFiles
				if digest {
					list = server.ListDepotFiles
				}
				files, err := list()
				if err != nil {
					return err
				}
				return writeDepotFiles(cmd.OutOrStdout(), files, digest)
			})
		},
	}
	addStreamFlag(cmd, &stream)
	cmd.Flags().BoolVar(&digest, "digest", false, "include each file's digest and size")
	return cmd
}

func addStreamFlag(cmd *cobra.Command, stream *string) {
	cmd.Flags().StringVarP(stream, "stream", "S", "", "the client's stream (default: read from the client spec)")
}

func setStream(server *p4.P4, stream string) error {
	if len(stream) == 0 {
		return nil
	}
	return server.SetStreamName(stream)
}

func writeDepotFiles(w io.Writer, files []p4.DepotFile, digest bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if digest {
		fmt.Fprintln(tw, "PATH\tACTION\tCL\tTYPE\tDIGEST\tSIZE")
	} else {
		fmt.Fprintln(tw, "PATH\tACTION\tCL\tTYPE")
	}
	for _, f := range files {
		if digest {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", f.Path, f.Action, f.CL, f.Type, f.Digest, f.Size)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Path, f.Action, f.CL, f.Type)
		}
	}
	return tw.Flush()
}
