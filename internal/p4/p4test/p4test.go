// Package p4test puts a scripted stand-in for the p4 executable on PATH, so code that
// runs p4 through bsh can be tested without a server.
package p4test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// Each run of the stub logs its arguments (tab separated, one run per line), keeps
// any "-x" file list and, for "-i", its stdin. It then prints the output set for that
// run (outN.txt, falling back to out.txt), writes err.txt to stderr and exits with
// the code in status.txt.
const script = `#!/bin/sh
dir=$(dirname "$0")
tab=$(printf '\t')
line=""
sep=""
prev=""
input=""
for a in "$@"; do
	line="$line$sep$a"
	sep="$tab"
	if [ "$prev" = "-x" ]; then
		cp "$a" "$dir/filelist.txt"
	fi
	if [ "$a" = "-i" ]; then
		input=1
	fi
	prev="$a"
done
printf '%s\n' "$line" >> "$dir/calls.txt"
n=$(($(wc -l < "$dir/calls.txt")))
if [ -n "$input" ]; then
	cat > "$dir/stdin$n.txt"
fi
if [ -f "$dir/out$n.txt" ]; then
	cat "$dir/out$n.txt"
elif [ -f "$dir/out.txt" ]; then
	cat "$dir/out.txt"
fi
if [ -f "$dir/err.txt" ]; then
	cat "$dir/err.txt" >&2
fi
if [ -f "$dir/status.txt" ]; then
	exit "$(cat "$dir/status.txt")"
fi
`

// Stub is a fake p4 living in its own temp dir.
type Stub struct {
	t   testing.TB
	dir string
}

// New writes the stub and puts its dir first on PATH for the rest of the test.
// Tests are skipped on Windows, where the stub can't run.
func New(t testing.TB) *Stub {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the p4 stub is a shell script")
	}
	s := &Stub{t: t, dir: t.TempDir()}
	s.write("p4", script, 0o755)
	t.Setenv("PATH", s.dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return s
}

// Output sets what every run prints to stdout.
func (s *Stub) Output(text string) {
	s.write("out.txt", text, 0o644)
}

// OutputFor sets what the nth run (counting from 1) prints to stdout.
func (s *Stub) OutputFor(n int, text string) {
	s.write("out"+strconv.Itoa(n)+".txt", text, 0o644)
}

// Stderr sets what every run prints to stderr.
func (s *Stub) Stderr(text string) {
	s.write("err.txt", text, 0o644)
}

// Status sets the exit code of every run.
func (s *Stub) Status(code int) {
	s.write("status.txt", strconv.Itoa(code), 0o644)
}

// Calls returns the arguments of each run so far, in order.
func (s *Stub) Calls() [][]string {
	text := s.read("calls.txt")
	if len(text) == 0 {
		return nil
	}
	var calls [][]string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		calls = append(calls, strings.Split(line, "\t"))
	}
	return calls
}

// Stdin returns what the nth run read from stdin, if it was given "-i".
func (s *Stub) Stdin(n int) string {
	return s.read("stdin" + strconv.Itoa(n) + ".txt")
}

// FileList returns the contents of the last file passed with "-x".
func (s *Stub) FileList() string {
	return s.read("filelist.txt")
}

func (s *Stub) write(name, text string, perm os.FileMode) {
	s.t.Helper()
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(text), perm); err != nil {
		s.t.Fatalf("error writing %s: %v", name, err)
	}
}

func (s *Stub) read(name string) string {
	s.t.Helper()
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	if err != nil {
		s.t.Fatalf("error reading %s: %v", name, err)
	}
	return string(b)
}
