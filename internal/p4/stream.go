package p4

import (
	"fmt"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

// CreateMainlineStream creates a new stream with type mainline and whose full stream path is //depot/name
func (p *P4) CreateMainlineStream(depot, name string) error {
	// generate a stream spec
	spec, err := p.output(Call{
		Command: "stream",
		Options: options.StreamSpec(options.StreamOutput, "", options.StreamTypeMainline),
		Args:    []string{fmt.Sprintf("//%s/%s", depot, name)},
	}, nil)
	if err != nil {
		return fmt.Errorf("error building stream spec: %w", err)
	}

	// feed the spec back into p4 to create the stream
	_, err = p.output(Call{
		Command: "stream",
		Options: options.StreamSpec(options.StreamInput, "", options.StreamTypeNone),
	}, strings.NewReader(spec))
	if err != nil {
		return fmt.Errorf("error creating mainline stream: %w", err)
	}

	return nil
}

// StreamDepth requests a client's Stream, then parses it to determine the stream's depth.
// A stream named //foo/bar has a depth of 2, and //foo/bar/baz has a depth of 3.
func (p *P4) StreamDepth() (int, error) {
	p.streamMutex.Lock()
	defer p.streamMutex.Unlock()

	if p.streamDepth > 0 {
		return p.streamDepth, nil
	}

	stream := p.streamName
	if len(stream) == 0 {
		spec, err := p.output(ztag(Call{
			Command: "client",
			Options: options.ClientSpec(options.ClientOutput, "", ""),
		}), nil)
		if err != nil {
			return 0, fmt.Errorf(`error viewing workspace "%s": %w`, p.Client, err)
		}

		stream = getFieldFromSpec(spec, "Stream")
		if len(stream) == 0 {
			return 0, fmt.Errorf(`stream name not found for client "%s"`, p.Client)
		}
	}

	depth, err := streamDepthFromName(stream)
	if err == nil {
		p.streamDepth = depth
		p.streamName = stream
	}

	return depth, err
}
