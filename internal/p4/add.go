package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// Add opens new files for add. Unlike other p4 commands, paths passed to Add must
// not escape the reserved characters #, @, %, and *; build opts with
// options.AddKeepWildcards so that p4 accepts them as-is.
//
//	p.Add(paths, options.AddFiles(options.AddKeepWildcards|options.AddNoIgnore, cl, "binary"))
func (p *P4) Add(paths []string, opts *options.Options) error {
	if err := p.runOnPaths("add", opts, paths); err != nil {
		return fmt.Errorf("error adding %d file(s): %w", len(paths), err)
	}
	return nil
}
