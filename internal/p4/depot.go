package p4

import (
	"fmt"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

// CreateStreamDepot creates a depot with type "stream".
func (p *P4) CreateStreamDepot(name string) error {
	// generate a depot spec
	spec, err := p.output(Call{
		Command: "depot",
		Options: options.DepotSpec(options.DepotOutput, options.DepotTypeStream),
		Args:    []string{name},
	}, nil)
	if err != nil {
		return fmt.Errorf("error building depot spec: %w", err)
	}

	// feed the spec back into p4 to create the depot
	_, err = p.output(Call{
		Command: "depot",
		Options: options.DepotSpec(options.DepotInput, options.DepotTypeNone),
	}, strings.NewReader(spec))
	if err != nil {
		return fmt.Errorf("error creating depot: %w", err)
	}

	return nil
}
