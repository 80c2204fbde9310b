package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newArgsCmd(a *app) *cobra.Command {
	var format string
	var useConfig bool

	cmd := &cobra.Command{
		Use:   "args <command>",
		Short: "Print the switches for a p4 command",
		Args:  cobra.ExactArgs(1),
	}
	rf := newRequestFlags(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "line", "output format: line, args, json or yaml")
	cmd.Flags().BoolVar(&useConfig, "defaults", false, "fill in max and parallel settings from the config file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var r options.Request
		if useConfig {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			r = rf.request(cfg.Defaults.Max, cfg.ParallelOptions())
		} else {
			r = rf.request(0, options.ParallelOptions{})
		}

		opts, err := build(args[0], r)
		if err != nil {
			return err
		}
		return writeOptions(cmd.OutOrStdout(), format, opts)
	}
	return cmd
}

func writeOptions(w io.Writer, format string, opts *options.Options) error {
	switch strings.ToLower(format) {
	case "line", "":
		_, err := fmt.Fprintln(w, opts.String())
		return err
	case "args":
		for _, arg := range opts.Args() {
			if _, err := fmt.Fprintln(w, arg); err != nil {
				return err
			}
		}
		return nil
	case "json":
		b, err := json.Marshal(opts)
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		if opts.Len() == 0 {
			_, err := fmt.Fprintln(w, "{}")
			return err
		}
		b, err := yaml.Marshal(opts)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf(`unknown format "%s" (expected line, args, json or yaml)`, format)
	}
}
