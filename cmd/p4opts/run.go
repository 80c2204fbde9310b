package main

import (
	"fmt"

	"github.com/danbrakeley/bsh"
	"github.com/danbrakeley/p4opts/internal/config"
	"github.com/danbrakeley/p4opts/internal/options"
	"github.com/danbrakeley/p4opts/internal/p4"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var skipLoginCheck bool

	cmd := &cobra.Command{
		Use:   "run <command> [file...]",
		Short: "Build the switches for a p4 command and run it",
		Long: `Build the switches for a p4 command and run it against the server from the
config file (or P4PORT, P4USER and P4CLIENT). The max and parallel settings
from the config's [defaults] are used unless given on the command line.

Files for add, edit, delete, reopen and revert are passed to p4 in a file list
(-x) when there is more than one, or when a path is too long for the command line.`,
		Args: cobra.MinimumNArgs(1),
	}
	rf := newRequestFlags(cmd.Flags())
	cmd.Flags().BoolVar(&skipLoginCheck, "skip-login-check", false, `don't check for a valid ticket with "p4 login -s" first`)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts, err := build(args[0], rf.request(cfg.Defaults.Max, cfg.ParallelOptions()))
		if err != nil {
			return err
		}

		server, disconnect := a.connect(cfg)
		defer disconnect()
		return runOnServer(a.logger(), server, !skipLoginCheck, args[0], opts, args[1:])
	}
	return cmd
}

// connect returns a client for the configured server. Anything p4 prints goes to
// the logger until disconnect is called.
func (a *app) connect(cfg config.Config) (server *p4.P4, disconnect func()) {
	log := a.logger()
	if len(cfg.Filename()) > 0 {
		log.Verbose("Config loaded from %s", cfg.Filename())
	}

	w, done := LogWriter(log.P4().InfoFast)
	sh := &bsh.Bsh{
		Stdout:       w,
		DisableColor: true,
	}
	sh.SetVerbose(a.verbose)

	s := p4.New(sh, cfg.Server.P4Port, cfg.Server.P4User, cfg.Server.P4Client)
	return &s, func() {
		w.Close()
		<-done
	}
}

func runOnServer(log Logger, server *p4.P4, checkLogin bool, command string, opts *options.Options, files []string) error {
	if checkLogin {
		needsLogin, err := server.NeedsLogin()
		if err != nil {
			return fmt.Errorf("error checking login on %s: %w", server.DisplayName(), err)
		}
		if needsLogin {
			return fmt.Errorf(`not logged in to %s (run "p4 login" first)`, server.DisplayName())
		}
	}

	log.Verbose("%s", server.CommandLine(p4.Call{Command: command, Options: opts, Args: files}))
	if err := runCommand(server, command, opts, files); err != nil {
		return fmt.Errorf("p4 %s failed on %s: %w", command, server.DisplayName(), err)
	}
	log.Info("p4 %s done", command)
	return nil
}

// these take any number of files, and hand long lists to p4 with -x
var pathCommands = map[string]func(*p4.P4, []string, *options.Options) error{
	"add":    (*p4.P4).Add,
	"edit":   (*p4.P4).Edit,
	"delete": (*p4.P4).Delete,
	"reopen": (*p4.P4).Reopen,
	"revert": (*p4.P4).Revert,
}

// runCommand runs a command through the client method made for it, if there is one.
func runCommand(server *p4.P4, command string, opts *options.Options, files []string) error {
	if fn, ok := pathCommands[command]; ok && len(files) > 0 {
		return fn(server, files, opts)
	}

	switch command {
	case "sync":
		return server.Sync(files, opts)
	case "submit":
		if len(files) == 0 {
			return server.Submit(opts)
		}
	case "shelve":
		return server.Shelve(opts, files...)
	case "unshelve":
		return server.Unshelve(opts, files...)
	case "resolve":
		return server.Resolve(opts, files...)
	case "move":
		if len(files) == 2 {
			return server.Move(files[0], files[1], opts)
		}
	}
	return server.Run(command, opts, files...)
}
