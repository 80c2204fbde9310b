package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// Edit checks out existing files from the depot. If your paths include any reserved
// characters (@#%*), you need to first escape them with EscapePath.
func (p *P4) Edit(paths []string, opts *options.Options) error {
	if err := p.runOnPaths("edit", opts, paths); err != nil {
		return fmt.Errorf("error opening %d file(s) for edit: %w", len(paths), err)
	}
	return nil
}

// Reopen moves opened files to another changelist, or changes their filetype.
func (p *P4) Reopen(paths []string, opts *options.Options) error {
	if err := p.runOnPaths("reopen", opts, paths); err != nil {
		return fmt.Errorf("error reopening %d file(s): %w", len(paths), err)
	}
	return nil
}
