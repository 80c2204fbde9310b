package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// Sync brings the given files (or the whole client, if paths is empty) up to date.
func (p *P4) Sync(paths []string, opts *options.Options) error {
	if err := p.run(Call{Command: "sync", Options: opts, Args: paths}); err != nil {
		return fmt.Errorf(`error syncing %s: %w`, p.Client, err)
	}
	return nil
}

// SyncLatest runs p4 sync ...#head
func (p *P4) SyncLatest(parallel options.ParallelOptions) error {
	opts := options.SyncFiles(options.SyncNone, 0, parallel)
	err := p.run(Call{Command: "sync", Options: opts, Args: []string{p.clientHead()}})
	if err != nil {
		return fmt.Errorf(`error syncing %s to head: %w`, p.Client, err)
	}
	return nil
}

// SyncLatestNoDownload runs "p4 sync -k ...#head" which will:
// "Keep existing workspace files; update the have list without updating the client workspace"
func (p *P4) SyncLatestNoDownload() error {
	opts := options.SyncFiles(options.SyncServerOnly|options.SyncQuiet, 0, options.ParallelOptions{})
	err := p.sh.Cmd(p.CommandLine(Call{Command: "sync", Options: opts, Args: []string{p.clientHead()}})).Out(nil).RunErr()
	if err != nil {
		return fmt.Errorf(`error fake-syncing %s to head: %w`, p.Client, err)
	}
	return nil
}

func (p *P4) clientHead() string {
	return fmt.Sprintf("//%s/...#head", p.Client)
}
