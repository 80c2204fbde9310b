package p4

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

// CreateEmptyChangelist creates a new changelist
func (p *P4) CreateEmptyChangelist(description string) (int64, error) {
	// generate a changelist spec
	clspec, err := p.output(Call{
		Fields:  []string{"Description=" + description, "Files="},
		Command: "change",
		Options: options.ChangeSpec(options.ChangeOutput, options.ChangeTypeNone),
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("error building changelist spec: %w", err)
	}

	// feed the spec back into p4 to create the changelist
	clnum, err := p.output(Call{
		Command: "change",
		Options: options.ChangeSpec(options.ChangeInput, options.ChangeTypeNone),
	}, strings.NewReader(clspec))
	if err != nil {
		return 0, fmt.Errorf("error creating changelist: %w", err)
	}

	return parseCreatedChange(clnum)
}

// parseCreatedChange reads the changelist number from "Change 123 created."
func parseCreatedChange(s string) (int64, error) {
	clRaw := strings.TrimSpace(s)
	clRaw = strings.TrimPrefix(clRaw, "Change ")
	if i := strings.Index(clRaw, " "); i >= 0 {
		clRaw = clRaw[:i]
	}
	cl, err := strconv.ParseInt(clRaw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse changelist number from '%s': %v", s, err)
	}
	return cl, nil
}
