package p4

import (
	"fmt"
	"strings"
)

// p4 reserves @, #, % and * in file paths, and expects them as %40, %23, %25 and %2A.
var escaper = strings.NewReplacer(
	"%", "%25",
	"@", "%40",
	"#", "%23",
	"*", "%2A",
)

// EscapePath replaces the characters p4 reserves in paths with their %xx forms.
func EscapePath(path string) string {
	return escaper.Replace(path)
}

// UnescapePath reverses EscapePath. It fails on any % that is not followed by one of
// the four escape codes.
func UnescapePath(path string) (string, error) {
	if !strings.Contains(path, "%") {
		return path, nil
	}

	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			b.WriteByte(path[i])
			continue
		}
		if i+3 > len(path) {
			return "", fmt.Errorf(`incomplete escape sequence at position %d in "%s"`, i, path)
		}
		switch strings.ToUpper(path[i+1 : i+3]) {
		case "25":
			b.WriteByte('%')
		case "40":
			b.WriteByte('@')
		case "23":
			b.WriteByte('#')
		case "2A":
			b.WriteByte('*')
		default:
			return "", fmt.Errorf(`invalid escape sequence "%s" in "%s"`, path[i:i+3], path)
		}
		i += 2
	}
	return b.String(), nil
}
