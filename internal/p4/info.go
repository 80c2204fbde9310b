package p4

import (
	"fmt"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

type CaseType uint8

const (
	CaseUnknown CaseType = iota
	CaseInsensitive
	CaseSensitive
)

func (c CaseType) String() string {
	switch c {
	case CaseInsensitive:
		return "insensitive"
	case CaseSensitive:
		return "sensitive"
	}
	return "unknown"
}

type Info struct {
	ServerVersion string
	CaseHandling  CaseType
}

// Info runs "p4 info -s" and picks out the server details that change how paths are compared.
func (p *P4) Info() (Info, error) {
	var info Info

	err := p.cmdAndScan(
		Call{Command: "info", Options: options.Info(options.InfoShortOutput)},
		func(rawLine string) error {
			parseInfoLine(&info, rawLine)
			return nil
		},
	)

	if err != nil {
		return Info{}, fmt.Errorf("error getting server info: %w", err)
	}

	return info, nil
}

func parseInfoLine(info *Info, rawLine string) {
	line := strings.TrimSpace(rawLine)
	switch {
	case strings.HasPrefix(line, "Case Handling:"):
		value := strings.TrimSpace(strings.TrimPrefix(line, "Case Handling:"))
		switch value {
		case "insensitive":
			info.CaseHandling = CaseInsensitive
		case "sensitive":
			info.CaseHandling = CaseSensitive
		}
	case strings.HasPrefix(line, "Server version:"):
		info.ServerVersion = strings.TrimSpace(strings.TrimPrefix(line, "Server version:"))
	}
}
