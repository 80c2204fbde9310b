package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// Revert discards changes to opened files.
func (p *P4) Revert(paths []string, opts *options.Options) error {
	if err := p.runOnPaths("revert", opts, paths); err != nil {
		return fmt.Errorf("error reverting %d file(s): %w", len(paths), err)
	}
	return nil
}

// RevertUnchanged reverts checked out files that have not been changed.
// A cl of 0 or less reverts unchanged files from every changelist.
func (p *P4) RevertUnchanged(path string, cl int64) error {
	if cl <= 0 {
		cl = options.NoChangelist
	}
	opts := options.RevertFiles(options.RevertUnchangedOnly, int(cl), "")
	return p.run(Call{Command: "revert", Options: opts, Args: []string{path}})
}
