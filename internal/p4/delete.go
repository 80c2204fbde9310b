package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// Delete marks files in the depot for delete (which deletes any local copy of the file as well,
// unless opts includes options.DeleteServerOnly).
func (p *P4) Delete(paths []string, opts *options.Options) error {
	if err := p.runOnPaths("delete", opts, paths); err != nil {
		return fmt.Errorf("error opening %d file(s) for delete: %w", len(paths), err)
	}
	return nil
}
