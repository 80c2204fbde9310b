package p4

import (
	"fmt"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

// ListClients returns the names of the current user's clients, sorted ignoring case.
func (p *P4) ListClients() ([]string, error) {
	g := options.New()
	g.SetValue("-F", "%domainName%")

	var out []string
	err := p.cmdAndScan(
		Call{
			Global:  g,
			Command: "clients",
			Options: options.ListClients(options.ClientsNone, p.User, "", 0, ""),
		},
		func(line string) error {
			if name := strings.TrimSpace(line); len(name) > 0 {
				out = append(out, name)
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf(`error listing clients: %w`, err)
	}
	sortCaseInsensitive(out)
	return out, nil
}
