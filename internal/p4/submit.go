package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// Submit runs "p4 submit" with the given options, ie from options.SubmitFiles.
func (p *P4) Submit(opts *options.Options) error {
	if err := p.run(Call{Command: "submit", Options: opts}); err != nil {
		return fmt.Errorf("error submitting: %w", err)
	}
	return nil
}

// SubmitChangelist submits the given changelist
func (p *P4) SubmitChangelist(cl int64) error {
	return p.Submit(options.SubmitFiles(options.SubmitNone, int(cl), "", options.SubmitTypeNone, options.ParallelOptions{}))
}

// Shelve stores copies of the opened files in a changelist on the server.
func (p *P4) Shelve(opts *options.Options, paths ...string) error {
	if err := p.run(Call{Command: "shelve", Options: opts, Args: paths}); err != nil {
		return fmt.Errorf("error shelving: %w", err)
	}
	return nil
}

// Unshelve opens shelved files in the workspace.
func (p *P4) Unshelve(opts *options.Options, paths ...string) error {
	if err := p.run(Call{Command: "unshelve", Options: opts, Args: paths}); err != nil {
		return fmt.Errorf("error unshelving: %w", err)
	}
	return nil
}

// Resolve resolves integrations and updates for opened files.
func (p *P4) Resolve(opts *options.Options, paths ...string) error {
	if err := p.run(Call{Command: "resolve", Options: opts, Args: paths}); err != nil {
		return fmt.Errorf("error resolving: %w", err)
	}
	return nil
}
