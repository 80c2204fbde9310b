package p4

import "github.com/danbrakeley/p4opts/internal/options"

// Move changes the path (including capitalization changes on case sensitive servers) and filetype of a file in the depot.
func (p *P4) Move(from string, to string, opts *options.Options) error {
	return p.run(Call{Command: "move", Options: opts, Args: []string{from, to}})
}
