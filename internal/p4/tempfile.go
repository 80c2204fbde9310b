package p4

import (
	"fmt"
	"os"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

// WriteTempFile writes contents to a new temp file whose name follows pattern (see
// os.CreateTemp). The caller must call cleanup when done with the file.
func WriteTempFile(pattern, contents string) (cleanup func(), filename string, err error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, "", fmt.Errorf("error creating temp file for pattern %s: %w", pattern, err)
	}
	filename = file.Name()
	cleanup = func() { os.Remove(filename) }

	if _, err := file.WriteString(contents); err != nil {
		file.Close()
		cleanup()
		return nil, "", fmt.Errorf("error writing temp file %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return nil, "", fmt.Errorf("error closing temp file %s: %w", filename, err)
	}
	return cleanup, filename, nil
}

// maxInlinePath is the longest single path passed on the command line. Windows limits
// a command line to 32,768 characters when starting a process.
const maxInlinePath = 30000

// runOnPaths runs command on paths. A single short path goes on the command line,
// anything more is written to a temp file and passed with "-x".
func (p *P4) runOnPaths(command string, opts *options.Options, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files given to %s", command)
	}
	if len(paths) == 1 && len(paths[0]) < maxInlinePath {
		return p.run(Call{Command: command, Options: opts, Args: paths})
	}

	cleanup, filename, err := WriteTempFile("p4opts_"+command+"_*.txt", strings.Join(paths, "\n"))
	if err != nil {
		return err
	}
	defer cleanup()

	g := options.New()
	g.SetValue("-x", filename)
	return p.run(Call{Global: g, Command: command, Options: opts})
}
