package main

import (
	"fmt"
	"io"
	"os"

	"github.com/danbrakeley/frog"
	"github.com/spf13/cobra"
)

var (
	// config will be loaded from the first extant file from this list, unless --config is given
	configFileNames = []string{
		"p4opts.toml",
		"p4opts.tml",
	}
)

func main() {
	status := mainExit()
	if status != 0 {
		// From os/proc.go: "For portability, the status code should be in the range [0, 125]."
		if status < 0 || status > 125 {
			status = 125
		}
		os.Exit(status)
	}
}

func mainExit() int {
	a := &app{
		stdout: os.Stdout,
		stdin:  os.Stdin,
		getenv: os.Getenv,
	}
	defer a.close()

	root := newRootCmd(a)
	if err := root.Execute(); err != nil {
		a.logger().Error("%v", err)
		return 1
	}
	return 0
}

// app holds what the subcommands share.
type app struct {
	stdout io.Writer
	stdin  io.Reader
	getenv func(string) string

	configPath string
	verbose    bool

	log      Logger
	closeLog func()
}

// logger creates the frog logger on first use, so commands that only print
// (args, flags, version) never touch the terminal.
func (a *app) logger() Logger {
	if a.log == nil {
		a.log, a.closeLog = MakeLogger(frog.New(frog.Auto, frog.POTime(false), frog.POLevel(false)), a.verbose)
	}
	return a.log
}

func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "p4opts",
		Short: "Build Perforce command line options from named flags",
		Long: `p4opts turns named flags (ie "PreviewOnly", "Force") into the switches a p4
command expects, in a stable order, and can run the result against a server.

Examples:
  p4opts args add --flag PreviewOnly -c 5
  p4opts args sync --flag Force --max 10 --threads 4 --batch 2 --format json
  p4opts flags resolve
  p4opts run sync //my-ws/...#head
  p4opts files --digest`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(a.stdout)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", fmt.Sprintf("config file (default: first of %v)", configFileNames))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every p4 command before it runs")

	root.AddCommand(
		newArgsCmd(a),
		newFlagsCmd(a),
		newRunCmd(a),
		newInfoCmd(a),
		newClientsCmd(a),
		newClientCmd(a),
		newOpenedCmd(a),
		newFilesCmd(a),
		newVersionCmd(a),
	)
	return root
}
