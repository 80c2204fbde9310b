package p4

import (
	"fmt"
	"sort"
	"strings"
)

type DepotFile struct {
	Path   string // relative to depot, ie 'Engine/foo', not '//UE4/Release/Engine/foo'
	Action string
	CL     string
	Type   string
	Digest string
	Size   string
}

// runAndParseDepotFiles runs the given call with "-z tag", which is expected to return a list of
// records, each with at least a depotFile, and optionally also a type, change, and action.
// The results are then sorted by Path (case-insensitive) and returned.
func (p *P4) runAndParseDepotFiles(c Call) ([]DepotFile, error) {
	streamDepth, err := p.StreamDepth()
	if err != nil {
		return nil, err
	}

	dp := depotFileParser{depth: streamDepth, out: make([]DepotFile, 0, 1024)}
	err = p.cmdAndScan(ztag(c), dp.line)
	if err != nil {
		return nil, fmt.Errorf(`error listing files: %w`, err)
	}

	return dp.finish(), nil
}

// depotFileParser collects DepotFiles from "-z tag" output, one line at a time.
type depotFileParser struct {
	depth  int
	prefix string
	cur    DepotFile
	out    []DepotFile
}

func (dp *depotFileParser) line(rawLine string) error {
	line := strings.TrimSpace(rawLine)

	// p4 -ztag uses an empty line to indicate the end of a record
	if len(line) == 0 {
		dp.flush()
		return nil
	}

	if len(line) < 5 || !strings.HasPrefix(line, "... ") {
		return fmt.Errorf(`expected "... <tag>", but got: %s`, line)
	}

	tag, value, _ := strings.Cut(line[4:], " ")
	value = strings.TrimSpace(value)
	switch tag {
	case "depotFile":
		if len(dp.prefix) == 0 {
			var err error
			dp.prefix, err = getDepotPrefix(value, dp.depth)
			if err != nil {
				return fmt.Errorf(`error parsing depot prefix: %w`, err)
			}
		}
		dp.cur.Path = strings.TrimPrefix(value, dp.prefix)
	case "action", "headAction":
		dp.cur.Action = value
	case "change", "headChange":
		dp.cur.CL = value
	case "type", "headType":
		dp.cur.Type = value
	case "digest":
		dp.cur.Digest = value
	case "fileSize":
		dp.cur.Size = value
	}

	return nil
}

func (dp *depotFileParser) flush() {
	if len(dp.cur.Path) != 0 {
		dp.out = append(dp.out, dp.cur)
	}
	dp.cur = DepotFile{}
}

// finish returns everything parsed so far, sorted in-place, alphabetical, ignoring case.
func (dp *depotFileParser) finish() []DepotFile {
	dp.flush()
	sort.Sort(DepotFileCaseInsensitive(dp.out))
	return dp.out
}

// getDepotPrefix returns the stream prefix given a line that includes the prefix and the stream depth
// For example: ("//a/b/c/d:foo", 2) would return "//a/b/"
func getDepotPrefix(line string, depth int) (string, error) {
	if !strings.HasPrefix(line, "//") {
		return "", fmt.Errorf(`line "%s" does not begin with "//"`, line)
	}
	i := 2
	for depth > 0 {
		j := strings.Index(line[i:], "/")
		if j < 0 {
			return "", fmt.Errorf(`line "%s" is not %d levels deep`, line, depth)
		}
		i += j + 1
		depth--
	}

	return line[:i], nil
}
